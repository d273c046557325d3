// Package cmd implements the command-line interface for playpen.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/playpen-cli/playpen/eventlog"
	"github.com/playpen-cli/playpen/player"
	"github.com/playpen-cli/playpen/preset"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("snapshot", "s", false, "Generate the JSON Schema for playback progress snapshots")
	schemaCmd.Flags().BoolP("presets", "p", false, "Generate the JSON Schema for media source presets")
	schemaCmd.MarkFlagsMutuallyExclusive("snapshot", "presets")
}

// schemaCmd generates JSON schemas for the structured data the console emits.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured console outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "entry", "snapshot", "preset":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("snapshot")):
			schema = reflector.Reflect(&player.Snapshot{})
		case lo.Must(cmd.Flags().GetBool("presets")):
			schema = reflector.Reflect([]preset.Preset{})
		default:
			schema = reflector.Reflect(&eventlog.Entry{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
