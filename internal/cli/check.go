package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themer"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <theme.toml>",
	Short: "Validate a theme file",
	Long:  "Parse and fully resolve a theme file, reporting the first error found.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := loadTheme(args[0])
		if err != nil {
			return describeThemeError(args[0], err)
		}

		if IsJSONOutput() {
			return json.NewEncoder(os.Stdout).Encode(checkReport{
				File:      args[0],
				Name:      theme.Name(),
				Variables: len(theme.Variables()),
				Valid:     true,
			})
		}

		fmt.Printf("%s: ok (theme %q, %d variables)\n", args[0], theme.Name(), len(theme.Variables()))
		return nil
	},
}

type checkReport struct {
	File      string `json:"file"`
	Name      string `json:"name"`
	Variables int    `json:"variables"`
	Valid     bool   `json:"valid"`
}

// describeThemeError unwraps the resolver error types into an operator
// friendly message while keeping the original error in the chain.
func describeThemeError(path string, err error) error {
	var (
		malformed *themer.MalformedSourceError
		structure *themer.StructureError
		undefined *themer.UndefinedVariableError
		cyclic    *themer.CyclicReferenceError
		badColor  *themer.InvalidColorError
	)
	switch {
	case errors.As(err, &malformed):
		return fmt.Errorf("%s is not valid TOML: %w", path, err)
	case errors.As(err, &structure):
		return fmt.Errorf("%s has an invalid structure at %s: %w", path, structure.Site, err)
	case errors.As(err, &undefined):
		return fmt.Errorf("%s references the undefined variable %q at %s: %w", path, undefined.Name, undefined.Site, err)
	case errors.As(err, &cyclic):
		return fmt.Errorf("%s contains a variable cycle: %w", path, err)
	case errors.As(err, &badColor):
		return fmt.Errorf("%s has an invalid color at %s: %w", path, badColor.Site, err)
	}
	return err
}
