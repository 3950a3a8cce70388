package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themer/internal/preview"
)

var (
	previewInteractive bool
	previewWatch       bool
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVar(&previewInteractive, "interactive", false, "browse the theme in a full-screen UI")
	previewCmd.Flags().BoolVar(&previewWatch, "watch", false, "re-render when the file changes")
}

var previewCmd = &cobra.Command{
	Use:   "preview <theme.toml>",
	Short: "Render a theme in the terminal",
	Long:  "Resolve a theme file and render its palette and widget styles with color swatches.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if previewInteractive {
			if IsNonInteractive() {
				return &PreflightError{
					Message: "interactive preview requires a terminal",
					Hint:    "drop --interactive, or run from a TTY",
				}
			}
			return preview.Run(path, previewWatch)
		}

		render := func() error {
			theme, err := loadTheme(path)
			if err != nil {
				return describeThemeError(path, err)
			}
			fmt.Print(preview.Render(theme))
			return nil
		}

		if err := render(); err != nil {
			if !previewWatch {
				return err
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		if !previewWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		changes, err := preview.Watch(ctx, path)
		if err != nil {
			return err
		}
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-changes:
				if !ok {
					return nil
				}
				fmt.Println()
				if err := render(); err != nil {
					fmt.Fprintf(os.Stderr, "error: %v\n", err)
				}
			}
		}
	},
}
