// Package jsonl reads and writes line-delimited JSON streams.
package jsonl

import (
	"bufio"
	"io"
	"strings"

	"finalform-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// maxLineBytes bounds a single input line; submissions are small but
// the default scanner limit of 64KB is too tight for long free-text
// answers.
const maxLineBytes = 4 * 1024 * 1024

// ReadAll decodes every non-blank line of r into a value of type T.
// Line numbers in errors are 1-based.
func ReadAll[T any](r io.Reader) ([]*T, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	var out []*T
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		value := new(T)
		if err := json.Unmarshal([]byte(line), value); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		out = append(out, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return out, nil
}

// Writer appends one JSON document per line.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Write(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if _, err := w.w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}
