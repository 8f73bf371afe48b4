package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete [form-id]",
	Short: "Delete a Google Form",
	Long: `Delete a Google Form by ID.

The form file is removed from Drive and dropped from the local catalog.
Deletion asks for confirmation unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "delete without confirmation")
	rootCmd.AddCommand(deleteCmd)
}

//nolint:errcheck // CLI interactive flow
func runDelete(cmd *cobra.Command, args []string) error {
	if formService == nil {
		return errors.New("form service not configured")
	}

	formID := args[0]
	if !deleteForce {
		cmd.Printf("Delete form %s? [y/N]: ", formID)
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(input))
		if answer != "y" && answer != "yes" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := formService.Delete(context.Background(), formID); err != nil {
		return fmt.Errorf("delete form: %w", err)
	}

	cmd.Println(styleSuccess.Render(fmt.Sprintf("Deleted form %s", formID)))
	return nil
}
