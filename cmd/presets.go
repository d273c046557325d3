// Package cmd implements the command-line interface for playpen.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/playpen-cli/playpen/preset"
	"github.com/playpen-cli/playpen/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	presetsCmd.Flags().BoolP("raw", "r", false, "Print URLs only, one per line")
	presetsCmd.MarkFlagsMutuallyExclusive("json", "raw")

	presetsCmd.SetOut(os.Stdout)
}

// presetsCmd lists every media source preset known to the application.
var presetsCmd = &cobra.Command{
	Use:     "presets",
	Short:   "List the registered media source presets",
	Aliases: []string{"sources"},
	Run: func(cmd *cobra.Command, args []string) {
		presets := preset.All()

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(presets))
			return
		}

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, p := range presets {
				cmd.Println(p.URL)
			}
			return
		}

		for i, p := range presets {
			cmd.Println(style.New().Bold(true).Foreground(style.AccentColor).Render(p.Name))
			if p.Note != "" {
				cmd.Println(style.Faint(p.Note))
			}
			cmd.Println(p.URL)

			if i < len(presets)-1 {
				cmd.Println()
			}
		}

		fmt.Fprintln(cmd.OutOrStdout())
		cmd.Println(style.Faint("Add your own with: playpen config set presets.extra \"name=url\""))
	},
}
