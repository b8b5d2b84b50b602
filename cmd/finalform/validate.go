package main

import (
	"fmt"
	"os"

	"finalform-service/internal/app/models"
	"finalform-service/internal/app/services/registry"
	"finalform-service/internal/pkg/exceptions"
	"finalform-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a spec file without loading a registry",
	}
	cmd.AddCommand(newValidateMeasureCommand())
	cmd.AddCommand(newValidateBindingCommand())
	return cmd
}

func newValidateMeasureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "measure <file>",
		Short: "Validate a measure spec file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var measure models.MeasureSpec
			if err := loadSpecFile(args[0], &measure); err != nil {
				return err
			}
			if err := utils.ValidateStruct(&measure); err != nil {
				return exceptions.ErrSchemaViolation(err, args[0])
			}
			if err := registry.ValidateMeasureInvariants(&measure); err != nil {
				return exceptions.ErrSchemaViolation(err, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "measure %s@%s is valid\n", measure.MeasureID, measure.Version)
			return nil
		},
	}
}

func newValidateBindingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "binding <file>",
		Short: "Validate a form binding spec file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var binding models.FormBindingSpec
			if err := loadSpecFile(args[0], &binding); err != nil {
				return err
			}
			if err := utils.ValidateStruct(&binding); err != nil {
				return exceptions.ErrSchemaViolation(err, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "binding %s@%s is valid\n", binding.BindingID, binding.Version)
			return nil
		},
	}
}

func loadSpecFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return exceptions.ErrSchemaViolation(err, path)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return exceptions.ErrSchemaViolation(err, path)
	}
	return nil
}
