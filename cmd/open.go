// Package cmd implements the command-line interface for playpen.
package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/playpen-cli/playpen/key"
	"github.com/playpen-cli/playpen/preset"
	"github.com/playpen-cli/playpen/recent"
	"github.com/playpen-cli/playpen/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const customSourceChoice = "Custom URL..."

func init() {
	rootCmd.AddCommand(openCmd)

	openCmd.Flags().StringP("preset", "p", "", "Open the named preset source directly")
	lo.Must0(openCmd.RegisterFlagCompletionFunc("preset", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return preset.Names(), cobra.ShellCompDirectiveNoFileComp
	}))
}

// openCmd interactively picks a media source and drops straight into the console.
var openCmd = &cobra.Command{
	Use:   "open [url]",
	Short: "Pick a media source and open the playback console for it",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		var url string

		switch {
		case len(args) == 1:
			url = args[0]
		case cmd.Flags().Changed("preset"):
			name := lo.Must(cmd.Flags().GetString("preset"))
			p, ok := preset.Get(name)
			if !ok {
				handleErr(preset.ErrUnknown(name))
			}
			url = p.URL
		default:
			url = askForSource()
		}

		if url == "" {
			return
		}

		if p, ok := preset.Get(url); ok {
			url = p.URL
		}

		handleErr(tui.Run(&tui.Options{URL: url}))
	},
}

// askForSource walks the user through source selection with interactive prompts.
func askForSource() string {
	choices := make([]string, 0)
	for _, p := range preset.All() {
		choices = append(choices, p.Name)
	}

	if viper.GetBool(key.RecentShowSuggestions) {
		choices = append(choices, recent.SuggestMany("")...)
	}

	choices = append(choices, customSourceChoice)

	selectPrompt := survey.Select{
		Message: "Which source do you want to debug?",
		Options: choices,
	}
	var choice string
	if err := survey.AskOne(&selectPrompt, &choice); err != nil {
		return ""
	}

	if choice != customSourceChoice {
		if p, ok := preset.Get(choice); ok {
			return p.URL
		}
		return choice
	}

	input := survey.Input{
		Message: "Enter the media URL:",
		Suggest: func(toComplete string) []string {
			return recent.SuggestMany(toComplete)
		},
	}
	var url string
	if err := survey.AskOne(&input, &url); err != nil {
		return ""
	}

	if url == "" {
		return ""
	}

	startMuted := survey.Confirm{
		Message: "Start muted?",
		Default: viper.GetBool(key.PlayerStartMuted),
	}
	var muted bool
	if err := survey.AskOne(&startMuted, &muted); err == nil {
		viper.Set(key.PlayerStartMuted, muted)
	}

	return url
}
