package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/formery-dev/formery/internal/core/domain"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your Google Forms",
	Long: `List the Google Forms on your account, most recently modified first.

Forms created by formery are annotated with the spec file they came from.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if formService == nil {
		return errors.New("form service not configured")
	}

	infos, err := formService.List(context.Background())
	if err != nil {
		return fmt.Errorf("list forms: %w", err)
	}

	if listJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal forms: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputFormsTable(cmd, infos)
}

func outputFormsTable(cmd *cobra.Command, infos []domain.FormInfo) error {
	if len(infos) == 0 {
		cmd.Println("No forms found.")
		cmd.Println("Create one with: formery create <spec.yaml>")
		return nil
	}

	cmd.Println(styleTitle.Render("Forms:"))
	cmd.Println()
	for i := range infos {
		cmd.Printf("  %s\n", infos[i].Title)
		cmd.Printf("    ID: %s\n", infos[i].FormID)
		if !infos[i].ModifiedTime.IsZero() {
			cmd.Printf("    Modified: %s\n", infos[i].ModifiedTime.Format(time.RFC3339))
		}
		if infos[i].SpecPath != "" {
			cmd.Printf("    Spec: %s\n", styleMuted.Render(infos[i].SpecPath))
		}
		cmd.Println()
	}
	return nil
}
