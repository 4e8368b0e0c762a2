package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strkw/pkg/core/version"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()

		if versionJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "strkw v%s\n", info.Version)
		fmt.Fprintf(out, "  Library:      %s\n", info.Library)
		fmt.Fprintf(out, "  Suite-Format: %s\n", info.Suite)
		if info.Commit != "" {
			fmt.Fprintf(out, "  Git Commit:   %s\n", info.Commit)
		}
		fmt.Fprintf(out, "  Go Version:   %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:      %s\n", info.Platform)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Version als JSON ausgeben")
}
