package main

import (
	"fmt"
	"os"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newMappingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Administer the form-input item-map store",
	}
	cmd.AddCommand(newMappingSetCommand())
	cmd.AddCommand(newMappingListCommand())
	cmd.AddCommand(newMappingDeleteCommand())
	return cmd
}

func newMappingSetCommand() *cobra.Command {
	var formID, measureID, mapFile string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a field_id -> item_id map for one form and measure",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(mapFile)
			if err != nil {
				return err
			}
			fields := make(map[string]string)
			if err := json.Unmarshal(data, &fields); err != nil {
				return exceptions.ErrCannotParseJSON(err)
			}

			store, err := newItemMapStore()
			if err != nil {
				return err
			}
			itemMap := &models.ItemMap{
				FormID:    formID,
				MeasureID: measureID,
				Fields:    fields,
			}
			if err := store.SaveItemMap(cmd.Context(), itemMap); err != nil {
				return err
			}
			for fieldID, itemID := range fields {
				event := &models.ResolutionEvent{
					FormID:          formID,
					MeasureID:       measureID,
					FieldID:         fieldID,
					CandidateItemID: itemID,
					Accepted:        true,
					Reason:          "operator mapping",
				}
				if err := store.RecordResolutionEvent(cmd.Context(), event); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %d bindings for form %s, measure %s\n", len(fields), formID, measureID)
			return nil
		},
	}

	cmd.Flags().StringVar(&formID, "form", "", "form id")
	cmd.Flags().StringVar(&measureID, "measure", "", "measure id")
	cmd.Flags().StringVar(&mapFile, "map", "", "JSON file holding the field_id -> item_id object")
	cmd.MarkFlagRequired("form")
	cmd.MarkFlagRequired("measure")
	cmd.MarkFlagRequired("map")
	return cmd
}

func newMappingListCommand() *cobra.Command {
	var formID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the measures mapped for one form",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newItemMapStore()
			if err != nil {
				return err
			}
			measureIDs, err := store.ListMappings(cmd.Context(), formID)
			if err != nil {
				return err
			}
			for _, measureID := range measureIDs {
				fmt.Fprintln(cmd.OutOrStdout(), measureID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formID, "form", "", "form id")
	cmd.MarkFlagRequired("form")
	return cmd
}

func newMappingDeleteCommand() *cobra.Command {
	var formID, measureID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the map for one form and measure",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newItemMapStore()
			if err != nil {
				return err
			}
			deleted, err := store.DeleteItemMap(cmd.Context(), formID, measureID)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "no mapping for form %s, measure %s\n", formID, measureID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted mapping for form %s, measure %s\n", formID, measureID)
			return nil
		},
	}

	cmd.Flags().StringVar(&formID, "form", "", "form id")
	cmd.Flags().StringVar(&measureID, "measure", "", "measure id")
	cmd.MarkFlagRequired("form")
	cmd.MarkFlagRequired("measure")
	return cmd
}
