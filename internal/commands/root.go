// Package commands provides CLI commands for tripchat.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/tripchat/internal/config"
)

var (
	// Global flags
	endpointFlag string
	timeoutFlag  int
	outputFlag   string
	fileFlag     string
	rawFlag      bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tripchat [message]",
	Short: "Terminal client for the trip-planning assistant",
	Long: `tripchat is a terminal client for a trip-planning chat assistant.
It talks to a single chat endpoint and renders the conversation in
your terminal.

Examples:
  tripchat chat                         Start an interactive session
  tripchat "Plan my trip to Lisbon"     Send a single message
  tripchat -f prompt.txt                Read the message from a file
  echo "weather in Rome?" | tripchat    Read the message from stdin
  tripchat "Hi" -o reply.md             Save the reply to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("tripchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		if len(args) > 0 {
			return runQuery(args[0], rawFlag)
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "", "Chat endpoint URL (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&timeoutFlag, "timeout", "t", 0, "Request timeout in seconds (overrides config)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read message from file")
	rootCmd.Flags().BoolVarP(&rawFlag, "raw", "r", false, "Print the raw reply text without decoration")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// getEndpoint returns the endpoint to use (from flag or config)
func getEndpoint() string {
	if endpointFlag != "" {
		return endpointFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return config.DefaultConfig().Endpoint
	}

	return cfg.Endpoint
}

// getTimeout returns the request timeout to use (from flag or config)
func getTimeout() time.Duration {
	if timeoutFlag > 0 {
		return time.Duration(timeoutFlag) * time.Second
	}

	cfg, err := config.LoadConfig()
	if err != nil || cfg.TimeoutSeconds <= 0 {
		return time.Duration(config.DefaultConfig().TimeoutSeconds) * time.Second
	}

	return time.Duration(cfg.TimeoutSeconds) * time.Second
}
