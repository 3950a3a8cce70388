package cli

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(varsCmd)
}

var varsCmd = &cobra.Command{
	Use:   "vars <theme.toml>",
	Short: "List resolved theme variables",
	Long:  "Resolve a theme file and print every [variables] entry as a concrete color.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := loadTheme(args[0])
		if err != nil {
			return describeThemeError(args[0], err)
		}

		vars := theme.Variables()
		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
		sort.Strings(names)

		if IsJSONOutput() {
			out := make(map[string]string, len(vars))
			for name, c := range vars {
				out[name] = c.Hex()
			}
			return json.NewEncoder(os.Stdout).Encode(out)
		}

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name, swatch(vars[name])})
		}
		return writeTable(os.Stdout, []string{"VARIABLE", "COLOR"}, rows)
	},
}
