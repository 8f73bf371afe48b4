package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formery-dev/formery/internal/core/domain"
)

var validateNoNumbering bool

var validateCmd = &cobra.Command{
	Use:   "validate [spec-file]",
	Short: "Validate a YAML spec without calling the API",
	Long: `Validate a YAML spec and print the form it would produce.

The output shows every section and question with the numbered titles a
push would send, so numbering can be reviewed offline.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateNoNumbering, "no-numbering", false, "disable title auto-numbering")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if formService == nil {
		return errors.New("form service not configured")
	}

	plan, err := formService.Validate(args[0], !validateNoNumbering)
	if err != nil {
		return err
	}

	cmd.Println(styleSuccess.Render("Spec is valid."))
	cmd.Println()
	printPlan(cmd, plan)
	return nil
}

func printPlan(cmd *cobra.Command, plan *domain.FormPlan) {
	cmd.Println(styleTitle.Render(plan.Title))
	if plan.Description != "" {
		cmd.Println(styleMuted.Render(plan.Description))
	}

	for _, sec := range plan.Sections {
		if sec.Title != "" {
			cmd.Printf("  %s\n", sec.Title)
		}
		for _, q := range sec.Questions {
			cmd.Printf("    %s %s\n", q.Title, styleMuted.Render(questionNote(q.Question)))
		}
	}
}

func questionNote(q domain.Question) string {
	note := string(q.Type)
	if q.Required {
		note += ", required"
	}
	return fmt.Sprintf("(%s)", note)
}
