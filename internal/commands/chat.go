package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/tripchat/internal/api"
	"github.com/diogo/tripchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the trip-planning assistant.

Each message is answered in turn; the session ends when the assistant
says goodbye or when you type 'exit', 'quit', or press Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	client, err := api.NewClient(getEndpoint(), api.WithTimeout(getTimeout()))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return tui.RunChat(client)
}
