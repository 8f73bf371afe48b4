package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/formery-dev/formery/internal/core/ports/driving"
	"github.com/formery-dev/formery/internal/logger"
)

// watchDebounce coalesces the burst of filesystem events editors emit
// on save into a single push.
const watchDebounce = 400 * time.Millisecond

var (
	createFormID      string
	createWatch       bool
	createNoNumbering bool
)

var createCmd = &cobra.Command{
	Use:   "create [spec-file]",
	Short: "Create or update a Google Form from a YAML spec",
	Long: `Create a Google Form from a YAML spec, or update an existing one.

Without --form-id a new form is created and its ID printed. With
--form-id the referenced form is rewritten to match the spec. Section
and question titles are numbered automatically unless --no-numbering
is given; titles that already carry numbering are left untouched.

Examples:
  formery create survey.yaml
  formery create survey.yaml --form-id 1FAbc...
  formery create survey.yaml --form-id 1FAbc... --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createFormID, "form-id", "", "update this form instead of creating a new one")
	createCmd.Flags().BoolVarP(&createWatch, "watch", "w", false, "re-push whenever the spec file changes")
	createCmd.Flags().BoolVar(&createNoNumbering, "no-numbering", false, "disable title auto-numbering")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	if formService == nil {
		return errors.New("form service not configured")
	}

	specPath := args[0]
	opts := driving.PushOptions{
		FormID:    createFormID,
		Numbering: !createNoNumbering,
	}

	ctx := context.Background()
	formID, err := pushOnce(ctx, cmd, specPath, opts)
	if err != nil {
		return err
	}

	if !createWatch {
		return nil
	}

	// Subsequent pushes in watch mode always update the form created
	// (or updated) by the first push.
	opts.FormID = formID
	return watchSpec(cmd, specPath, opts)
}

func pushOnce(ctx context.Context, cmd *cobra.Command, specPath string, opts driving.PushOptions) (string, error) {
	ref, err := formService.Push(ctx, specPath, opts)
	if err != nil {
		return "", err
	}

	if opts.FormID == "" {
		cmd.Println(styleSuccess.Render(fmt.Sprintf("Created form %q", ref.Title)))
	} else {
		cmd.Println(styleSuccess.Render(fmt.Sprintf("Updated form %q", ref.Title)))
	}
	cmd.Printf("  ID:  %s\n", ref.FormID)
	if ref.ResponderURI != "" {
		cmd.Printf("  URL: %s\n", ref.ResponderURI)
	}
	return ref.FormID, nil
}

// watchSpec re-pushes the spec on every change until interrupted.
// The watch is on the containing directory because most editors replace
// the file on save, which drops a watch on the file itself.
func watchSpec(cmd *cobra.Command, specPath string, opts driving.PushOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(specPath)
	if err != nil {
		return fmt.Errorf("resolve spec path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Println(styleMuted.Render(fmt.Sprintf("Watching %s (ctrl-c to stop)", specPath)))

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("\nStopped watching.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("spec changed: %s", event)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			if _, err := pushOnce(ctx, cmd, specPath, opts); err != nil {
				// Keep watching; a broken intermediate save should not
				// end the session.
				cmd.Println(styleWarning.Render(fmt.Sprintf("push failed: %v", err)))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
