package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/tripchat/internal/api"
	"github.com/diogo/tripchat/internal/models"
	"github.com/diogo/tripchat/internal/render"
	"github.com/diogo/tripchat/internal/transcript"
)

// sessionState is the controller state for the current session.
//
// All transitions go through Update: Idle -> Awaiting on a non-empty submit,
// Awaiting -> Idle on reply or failure, Awaiting -> Ended on a reply that
// signals end-of-session. Ended is terminal; only a restart leaves it.
type sessionState int

const (
	// stateIdle: input enabled, no request in flight.
	stateIdle sessionState = iota
	// stateAwaiting: exactly one request in flight, input disabled.
	stateAwaiting
	// stateEnded: server declared end-of-session, input disabled for good.
	stateEnded
)

// endedPlaceholder replaces the input placeholder once the session ends.
const endedPlaceholder = "Session ended. Restart tripchat to begin a new conversation."

// Message types for the TUI
type (
	replyMsg struct {
		reply *models.TurnReply
	}
	errMsg struct {
		err error
	}
)

// Model represents the TUI state
type Model struct {
	client api.ChatClient

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	log   *transcript.Transcript
	state sessionState
	ready bool
	flash string // one-shot status bar note, cleared on next key

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(client api.ChatClient) Model {
	ta := textarea.New()
	ta.Placeholder = "Where are you off to?"
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:   client,
		textarea: ta,
		spinner:  s,
		log:      transcript.New(),
		state:    stateIdle,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 1 // Status bar
		padding := 2      // Extra spacing

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		// Initialize viewport on first size message
		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		m.flash = ""

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			// No cancel affordance exists: an in-flight request always
			// runs to completion, so esc only quits outside Awaiting.
			if m.state != stateAwaiting {
				return m, tea.Quit
			}

		case "alt+enter":
			if m.state == stateIdle {
				m.textarea.InsertString("\n")
			}

		case "ctrl+y":
			if last, ok := m.log.LastByRole(models.RoleAssistant); ok {
				if err := clipboard.WriteAll(last.Content); err == nil {
					m.flash = "Copied last reply"
				}
			}

		case "enter":
			return m.submit()
		}

	case replyMsg:
		m.log.Append(models.RoleAssistant, msg.reply.Text)
		m.updateViewport()
		m.viewport.GotoBottom()

		if msg.reply.Quit {
			m.state = stateEnded
			m.textarea.Placeholder = endedPlaceholder
			m.textarea.Blur()
		} else {
			m.state = stateIdle
			cmds = append(cmds, m.textarea.Focus())
		}

	case errMsg:
		// Transport and parse failures surface as transcript entries and
		// return the session to Idle; they never end the session.
		m.log.Append(models.RoleAssistant, errorEntry(msg.err))
		m.updateViewport()
		m.viewport.GotoBottom()
		m.state = stateIdle
		cmds = append(cmds, m.textarea.Focus())

	case spinner.TickMsg:
		if m.state == stateAwaiting {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Only feed key events to the textarea, and only while input is enabled
	if m.state == stateIdle {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs one turn: it validates the draft, renders the user entry,
// disables input and issues the single network request for this turn.
// Outside Idle it is a no-op, which is what enforces the at-most-one-
// in-flight invariant.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state != stateIdle {
		return m, nil
	}

	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return m, nil
	}

	// Local exit shortcuts, checked before anything is rendered or sent
	if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
		return m, tea.Quit
	}

	m.log.Append(models.RoleUser, input)
	m.updateViewport()
	m.viewport.GotoBottom()

	m.state = stateAwaiting
	m.textarea.Reset()
	m.textarea.Blur()

	return m, tea.Batch(
		m.sendMessage(input),
		m.spinner.Tick,
	)
}

// sendMessage creates a command that performs the network round trip
func (m Model) sendMessage(message string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.client.Send(message)
		if err != nil {
			return errMsg{err: err}
		}
		return replyMsg{reply: reply}
	}
}

// errorEntry converts a turn failure into the transcript entry describing it
func errorEntry(err error) string {
	return fmt.Sprintf("⚠ Error: %v", err)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("✈ Trip Chat"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.client.Endpoint()),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	// Messages area
	var messagesContent string
	if m.log.Len() == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	// Input area
	var inputContent string
	switch m.state {
	case stateAwaiting:
		inputContent = fmt.Sprintf("%s %s", m.spinner.View(), loadingStyle.Render("Waiting for reply"))
	case stateEnded:
		inputContent = endedStyle.Render(endedPlaceholder)
	default:
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Align(lipgloss.Center).Render("✈")
	title := welcomeTitleStyle.Width(width).Align(lipgloss.Center).Render("Welcome to Trip Chat")
	subtitle := welcomeStyle.Width(width).Align(lipgloss.Center).Render("Ask about a destination to start planning")

	content := lipgloss.JoinVertical(lipgloss.Center, "", icon, "", title, "", subtitle, "")

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	if m.flash != "" {
		return statusBarStyle.Width(width).Align(lipgloss.Center).Render(
			statusDescStyle.Render(m.flash),
		)
	}

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Alt+Enter", "New line"},
		{"Ctrl+Y", "Copy reply"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled transcript entries
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.log.Entries() {
		if i > 0 {
			content.WriteString("\n")
		}

		switch msg.Role {
		case models.RoleUser:
			label := userLabelStyle.Render("⬤ " + msg.Role.Label())
			body := transcript.Sanitize(msg.Content)
			bubble := userBubbleStyle.Width(bubbleWidth).Render(body)
			content.WriteString(label + "\n" + bubble)

		default:
			label := assistantLabelStyle.Render("✈ " + msg.Role.Label())

			if strings.HasPrefix(msg.Content, "⚠ Error:") {
				body := errorEntryStyle.Render(transcript.Sanitize(msg.Content))
				content.WriteString(label + "\n" + body)
				break
			}

			rendered, err := render.MarkdownWithWidth(transcript.FormatBody(msg.Content), bubbleWidth-4)
			if err != nil {
				rendered = transcript.Sanitize(msg.Content)
			}
			rendered = strings.TrimRight(rendered, "\n")

			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI
func RunChat(client api.ChatClient) error {
	m := NewChatModel(client)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
