package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/strkw/foundation/core/errors"
)

var callJSON bool

var callCmd = &cobra.Command{
	Use:   "call <keyword> [argumente...]",
	Short: "Ein Keyword direkt aufrufen",
	Long: `Ruft ein Keyword mit den angegebenen Argumenten auf und gibt den Wert aus.
Argumente werden positionsweise oder als name=wert übergeben.
Schlägt das Keyword fehl, endet strkw mit Exit-Code 1.

Beispiele:
  strkw call "Get Line Count" "$(cat datei.txt)"
  strkw call split_string "a,b,c" , max_split=1
  strkw call "Should Be Lowercase" "ABC" msg="nicht klein"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().BoolVar(&callJSON, "json", false, "Ergebnis als JSON ausgeben")
}

func runCall(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	result := a.executor.Execute(context.Background(), args[0], args[1:])

	if callJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else if result.Passed() {
		if text := result.Text(); text != "" {
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
	} else {
		fmt.Fprintf(os.Stderr, "FAIL: %s\n", errors.MessageOf(result.Error))
	}

	if !result.Passed() {
		return errFailed
	}
	return nil
}
