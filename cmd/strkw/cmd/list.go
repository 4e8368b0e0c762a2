package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/strkw/foundation/utils/stringx"
	"github.com/msto63/strkw/internal/keywords"
)

var listFamily string

var listCmd = &cobra.Command{
	Use:   "list [muster]",
	Short: "Verfügbare Keywords anzeigen",
	Long: `Zeigt alle Keywords mit Alias, Parametern und Beschreibung an.
Ein optionales Glob-Muster filtert die Namen (ohne Beachtung der Groß-/Kleinschreibung).

Beispiele:
  strkw list
  strkw list "*line*"
  strkw list --family case`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFamily, "family", "", "Nur Keywords dieser Familie, Teilstring genügt (access, filtering, transformation, case)")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	defs, err := filterDefinitions(a.executor.Registry().Definitions(), args, listFamily)
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Keine Keywords gefunden.")
		return nil
	}

	rows := make([][]string, 0, len(defs))
	for _, def := range defs {
		rows = append(rows, []string{def.Name, def.Alias, def.Signature(), def.Description})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))).
		Headers("KEYWORD", "ALIAS", "ARGUMENTE", "BESCHREIBUNG").
		Rows(rows...)

	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	fmt.Fprintf(cmd.OutOrStdout(), "%d Keywords\n", len(defs))
	return nil
}

func filterDefinitions(defs []*keywords.Definition, args []string, family string) ([]*keywords.Definition, error) {
	glob := stringx.NewGlobMatcher()
	out := make([]*keywords.Definition, 0, len(defs))

	for _, def := range defs {
		if family != "" && !strings.Contains(strings.ToLower(def.Family), strings.ToLower(family)) {
			continue
		}
		if len(args) == 1 {
			pattern := strings.ToLower(args[0])
			byName, err := glob.FullMatch(strings.ToLower(def.Name), pattern)
			if err != nil {
				return nil, fmt.Errorf("ungültiges Muster '%s': %w", args[0], err)
			}
			byAlias, _ := glob.FullMatch(def.Alias, pattern)
			if !byName && !byAlias {
				continue
			}
		}
		out = append(out, def)
	}
	return out, nil
}
