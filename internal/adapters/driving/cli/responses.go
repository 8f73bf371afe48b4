package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formery-dev/formery/internal/adapters/driven/export"
)

var responsesOut string

var responsesCmd = &cobra.Command{
	Use:   "responses [form-id]",
	Short: "Export a form's responses as CSV",
	Long: `Fetch the responses submitted to a form and write them as CSV.

Columns follow the form's question order, prefixed by the response ID
and submission time. Multi-select answers are joined with "; ". Output
goes to stdout unless --out is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runResponses,
}

func init() {
	responsesCmd.Flags().StringVarP(&responsesOut, "out", "o", "", "write CSV to this file instead of stdout")
	rootCmd.AddCommand(responsesCmd)
}

func runResponses(cmd *cobra.Command, args []string) error {
	if formService == nil {
		return errors.New("form service not configured")
	}

	exp, err := formService.Responses(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("fetch responses: %w", err)
	}

	out := cmd.OutOrStdout()
	if responsesOut != "" {
		f, err := os.Create(responsesOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", responsesOut, err)
		}
		defer f.Close()
		out = f
	}

	if err := export.NewCSVWriter(out).Write(exp); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	if responsesOut != "" {
		cmd.Println(styleSuccess.Render(fmt.Sprintf("Wrote %d responses to %s", len(exp.Rows), responsesOut)))
	}
	return nil
}
