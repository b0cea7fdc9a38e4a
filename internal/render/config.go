package render

import (
	"github.com/diogo/tripchat/internal/config"
)

// LoadOptionsFromConfig builds render Options from the user configuration,
// falling back to defaults when the config cannot be read.
func LoadOptionsFromConfig() Options {
	opts := DefaultOptions()

	cfg, err := config.LoadConfig()
	if err != nil {
		return opts
	}

	if cfg.Markdown.Style != "" {
		opts.Style = cfg.Markdown.Style
	}
	opts.EnableEmoji = cfg.Markdown.EnableEmoji
	opts.PreserveNewLines = cfg.Markdown.PreserveNewLines

	return opts
}

// LoadOptionsFromConfigWithWidth builds render Options from the user
// configuration with the specified width.
func LoadOptionsFromConfigWithWidth(width int) Options {
	return LoadOptionsFromConfig().WithWidth(width)
}
