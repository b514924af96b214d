package main

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/knowledge"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/spf13/cobra"
)

func newValidateKBCmd() *cobra.Command {
	var kbPath, schemaPath string
	cmd := &cobra.Command{
		Use:   "validate-kb",
		Short: "Validate a knowledge base file against the schema",
		Long:  "Validates a knowledge base against the built-in schema. With --schema the file must also satisfy an additional JSON Schema, such as one that makes fields required.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if schemaPath != "" {
				if err := schemas.ValidateJSON(schemaPath, kbPath); err != nil {
					return fmt.Errorf("validation failed against %s: %w", schemaPath, err)
				}
			}

			kb, err := knowledge.LoadKnowledgeBase(kbPath)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Knowledge base is valid: %s\n", kbPath)
			_, _ = fmt.Fprintf(out, "  skills:       %d\n", len(kb.Skills))
			_, _ = fmt.Fprintf(out, "  projects:     %d\n", len(kb.Projects))
			_, _ = fmt.Fprintf(out, "  experience:   %d\n", len(kb.Experience))
			_, _ = fmt.Fprintf(out, "  certificates: %d\n", len(kb.Certificates))
			_, _ = fmt.Fprintf(out, "  education:    %d\n", len(kb.Education))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kbPath, "kb", "k", "", "Path to knowledge base JSON file")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to an additional JSON Schema file to validate against")
	_ = cmd.MarkFlagRequired("kb")

	return cmd
}
