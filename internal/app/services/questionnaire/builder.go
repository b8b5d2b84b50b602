package questionnaire

import (
	"fmt"
	"time"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/utils"

	"github.com/google/uuid"
)

// eventNamespace seeds deterministic ids so that re-processing the same
// submission yields byte-identical events.
var eventNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("finalform-service"))

// IDGenerator mints observation and event ids. Deterministic mode
// derives them from (measure, submission, code) so outputs are stable
// across runs.
type IDGenerator struct {
	Deterministic bool
}

func (g *IDGenerator) NewID(measureID, submissionID, code string) string {
	if g.Deterministic {
		seed := fmt.Sprintf("%s:%s:%s", measureID, submissionID, code)
		return uuid.NewSHA1(eventNamespace, []byte(seed)).String()
	}
	return uuid.New().String()
}

// ScoredScale pairs a scale score with its interpretation label.
type ScoredScale struct {
	Score ScaleScore
	Label string
}

// EventBuilder assembles the per-measure measurement event from the
// recoded items and scored scales.
type EventBuilder struct {
	IDs *IDGenerator
}

func NewEventBuilder(deterministic bool) *EventBuilder {
	return &EventBuilder{IDs: &IDGenerator{Deterministic: deterministic}}
}

// Build produces one event per (submission, measure). Item observations
// follow measure position order and include missing items with a nil
// value; scale observations follow spec declaration order.
func (b *EventBuilder) Build(submission *models.FormSubmission, measure *models.MeasureSpec, section *RecodedSection, scales []ScoredScale, source models.Source) models.MeasurementEvent {
	event := models.MeasurementEvent{
		MeasurementEventID: b.IDs.NewID(measure.MeasureID, submission.SubmissionID, "event"),
		MeasureID:          measure.MeasureID,
		MeasureVersion:     measure.Version,
		SubjectID:          submission.Subject(),
		Timestamp:          submission.Timestamp,
		Source:             source,
	}
	event.Source.FormID = submission.FormID
	event.Source.SubmissionID = submission.SubmissionID
	event.Source.Platform = platformOf(submission.FormID)

	items := 0
	for i := range section.Items {
		item := &section.Items[i]
		obs := models.Observation{
			ObservationID: b.IDs.NewID(measure.MeasureID, submission.SubmissionID, item.ItemID),
			MeasureID:     measure.MeasureID,
			Code:          item.ItemID,
			Kind:          constvars.ObservationKindItem,
			RawAnswer:     item.RawAnswer,
			Missing:       !item.Present(),
		}
		if item.Present() {
			v := float64(*item.Value)
			obs.Value = &v
			obs.ValueType = constvars.ValueTypeInteger
		}
		event.Observations = append(event.Observations, obs)
		items++
	}

	scored := 0
	for i := range scales {
		s := &scales[i]
		obs := models.Observation{
			ObservationID: b.IDs.NewID(measure.MeasureID, submission.SubmissionID, s.Score.ScaleID),
			MeasureID:     measure.MeasureID,
			Code:          s.Score.ScaleID,
			Kind:          constvars.ObservationKindScale,
			Label:         s.Label,
			Missing:       !s.Score.Scored,
		}
		if s.Score.Scored {
			v := s.Score.Value
			obs.Value = &v
			obs.ValueType = s.Score.ValueType
		}
		event.Observations = append(event.Observations, obs)
		scored++
	}

	event.Telemetry = models.Telemetry{
		Processor:         constvars.ProcessorName,
		ProcessorVersion:  constvars.ProcessorVersion,
		ProcessedAt:       b.processedAt(submission),
		ItemObservations:  items,
		ScaleObservations: scored,
	}
	return event
}

// processedAt pins the timestamp to the submission in deterministic
// mode so repeated runs produce byte-equal output.
func (b *EventBuilder) processedAt(submission *models.FormSubmission) string {
	if b.IDs.Deterministic && submission.Timestamp != "" {
		return submission.Timestamp
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func platformOf(formID string) string {
	if p := utils.Platform(formID); p != "" {
		return p
	}
	return constvars.PlatformUnknown
}
