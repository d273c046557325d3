// Package cmd implements the command-line interface for playpen.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/playpen-cli/playpen/color"
	"github.com/playpen-cli/playpen/constant"
	"github.com/playpen-cli/playpen/icon"
	"github.com/playpen-cli/playpen/key"
	"github.com/playpen-cli/playpen/log"
	"github.com/playpen-cli/playpen/preset"
	"github.com/playpen-cli/playpen/style"
	"github.com/playpen-cli/playpen/tui"
	"github.com/playpen-cli/playpen/util"
	"github.com/playpen-cli/playpen/version"
	"github.com/playpen-cli/playpen/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("persist-prefs", "P", true, "Mirror playback preferences to the localized preference store")
	lo.Must0(viper.BindPFlag(key.PrefsPersist, rootCmd.PersistentFlags().Lookup("persist-prefs")))

	rootCmd.Flags().StringP("url", "u", "", "Load the given media URL immediately, skipping the source list")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("url", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return preset.Names(), cobra.ShellCompDirectiveDefault
	}))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the playpen application.
var rootCmd = &cobra.Command{
	Use:   constant.Playpen,
	Short: "An interactive debugging console for media playback engines",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - An interactive debugging console for media playback engines"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		url := lo.Must(cmd.Flags().GetString("url"))
		if p, ok := preset.Get(url); ok {
			url = p.URL
		}

		options := tui.Options{
			URL: url,
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
