package icon

// Icon identifies a registered UI symbol.
type Icon int

// Registered UI symbols used across the debug console.
const (
	Play Icon = iota + 1
	Pause
	Stop
	Volume
	Muted
	Seek
	Video
	Hidden
	Progress
	Success
	Fail
	Mark
	Link
	Clear
)

// icons is the global registry mapping each Icon to its per-variant representations.
var icons = map[Icon]*iconDef{
	Play:     {emoji: "▶️", nerd: "", plain: ">", squares: "▶"},
	Pause:    {emoji: "⏸️", nerd: "", plain: "||", squares: "▣"},
	Stop:     {emoji: "⏹️", nerd: "", plain: "x", squares: "▪"},
	Volume:   {emoji: "🔊", nerd: "", plain: "vol", squares: "◈"},
	Muted:    {emoji: "🔇", nerd: "", plain: "mut", squares: "◇"},
	Seek:     {emoji: "⏩", nerd: "", plain: ">>", squares: "▸▸"},
	Video:    {emoji: "🎬", nerd: "", plain: "[v]", squares: "▦"},
	Hidden:   {emoji: "🙈", nerd: "", plain: "[-]", squares: "▢"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", squares: "◌"},
	Success:  {emoji: "✅", nerd: "", plain: "+", squares: "■"},
	Fail:     {emoji: "❌", nerd: "", plain: "!", squares: "□"},
	Mark:     {emoji: "🔖", nerd: "", plain: "*", squares: "▪"},
	Link:     {emoji: "🔗", nerd: "", plain: "@", squares: "▫"},
	Clear:    {emoji: "🧹", nerd: "", plain: "~", squares: "◻"},
}
