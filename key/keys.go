// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Media Playback - these keys configure the external playback engine.
const (
	PlayerPath             = "player.path"
	PlayerProgressInterval = "player.progress_interval"
	PlayerStartMuted       = "player.start_muted"
)

// Source Presets - these keys manage the registry of debug media sources.
const (
	PresetExtra = "presets.extra"
)

// Preference Persistence - these keys govern the durable preference store.
const (
	PrefsPersist = "prefs.persist"
)

// Recent Sources - these keys define the UI/UX parameters for URL entry suggestions.
const (
	RecentShowSuggestions = "recent.show_suggestions"
	RecentLimit           = "recent.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIURLPromptString = "tui.url_prompt"
	TUIVolumeStep      = "tui.volume_step"
	TUIWrapLogLines    = "tui.wrap_log_lines"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
