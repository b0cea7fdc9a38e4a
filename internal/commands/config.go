package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/tripchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [set key value]",
	Short: "Show or change settings",
	Long: `Show the current configuration, or change a setting.

Settable keys:
  endpoint    Chat endpoint URL
  timeout     Request timeout in seconds
  style       Markdown theme (dark, light, auto, or path to JSON theme)
  clipboard   Copy replies to the clipboard (true/false)
  verbose     Detailed logging to stderr (true/false)

Examples:
  tripchat config
  tripchat config set endpoint http://myhost:5000/api/chat
  tripchat config set timeout 120`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return showConfig()
		}
		if len(args) == 3 && args[0] == "set" {
			return setConfig(args[1], args[2])
		}
		return fmt.Errorf("usage: tripchat config [set key value]")
	},
}

func showConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	path, _ := config.GetConfigPath()

	keyStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	valStyle := lipgloss.NewStyle().Foreground(colorText)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	fmt.Println(dimStyle.Render(path))
	fmt.Printf("%s %s\n", keyStyle.Render("endpoint: "), valStyle.Render(cfg.Endpoint))
	fmt.Printf("%s %s\n", keyStyle.Render("timeout:  "), valStyle.Render(fmt.Sprintf("%ds", cfg.TimeoutSeconds)))
	fmt.Printf("%s %s\n", keyStyle.Render("style:    "), valStyle.Render(cfg.Markdown.Style))
	fmt.Printf("%s %s\n", keyStyle.Render("clipboard:"), valStyle.Render(strconv.FormatBool(cfg.CopyToClipboard)))
	fmt.Printf("%s %s\n", keyStyle.Render("verbose:  "), valStyle.Render(strconv.FormatBool(cfg.Verbose)))

	return nil
}

func setConfig(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "endpoint":
		cfg.Endpoint = value
	case "timeout":
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("timeout must be a positive number of seconds")
		}
		cfg.TimeoutSeconds = seconds
	case "style":
		cfg.Markdown.Style = value
	case "clipboard":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("clipboard must be true or false")
		}
		cfg.CopyToClipboard = enabled
	case "verbose":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false")
		}
		cfg.Verbose = enabled
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	successStyle := lipgloss.NewStyle().Foreground(colorSuccess)
	fmt.Println(successStyle.Render(fmt.Sprintf("✓ %s updated", key)))
	return nil
}
