package editor

import "github.com/iw2rmb/tuitext/gcstring"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer. Tabs are expanded to spaces.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4

	// KeyMap defaults to DefaultKeyMap() when left zero.
	KeyMap KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int
	Unicode      *gcstring.Unicode

	ReadOnly  bool
	Clipboard Clipboard

	// OnChange is called after any update that changed the buffer: text,
	// cursor, or selection.
	OnChange func(ChangeEvent)

	// Highlighter styles spans of the visible lines.
	Highlighter Highlighter
}

const defaultTabWidth = 4

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Unicode == nil {
		cfg.Unicode = gcstring.DefaultUnicode()
	}
	return cfg
}
