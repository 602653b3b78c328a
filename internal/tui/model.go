package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"babysteps/internal/chat"
	"babysteps/internal/domain"
)

// SessionPort is the TUI-facing subset of the chat session.
type SessionPort interface {
	Send(ctx context.Context, text string) (*chat.Turn, error)
	Welcome(ctx context.Context) (*domain.ChatMessage, error)
	History(ctx context.Context) ([]domain.ChatMessage, error)
	Child() *domain.Child
}

// Model is the Bubble Tea model for the chat application.
type Model struct {
	session    SessionPort
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	followUps  []string
	status     string
	ready      bool
	waiting    bool
}

// New creates a new chat model instance.
func New(session SessionPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{session: session, input: ti, viewport: vp, status: "Press 1-3 to pick a suggested question, Ctrl+C to quit."}
}

type historyMsg struct {
	messages []domain.ChatMessage
	err      error
}

type answerMsg struct {
	turn *chat.Turn
	err  error
}

// Init starts the cursor blink and loads the chat feed.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.openCmd())
}

// openCmd loads the stored history, including any proactive messages sent
// before the chat opened. A first-time chat gets the welcome greeting.
func (m Model) openCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		history, err := m.session.History(ctx)
		if err != nil {
			return historyMsg{err: err}
		}
		if len(history) == 0 {
			welcome, err := m.session.Welcome(ctx)
			if err != nil {
				return historyMsg{err: err}
			}
			history = []domain.ChatMessage{*welcome}
		}
		return historyMsg{messages: history}
	}
}

func (m Model) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		turn, err := m.session.Send(context.Background(), text)
		return answerMsg{turn: turn, err: err}
	}
}

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil

	case historyMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		for _, message := range msg.messages {
			m.transcript = append(m.transcript, m.renderMessage(message))
		}
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil

	case answerMsg:
		m.waiting = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.transcript = append(m.transcript, m.renderAnswer(msg.turn))
		m.followUps = msg.turn.FollowUps
		m.status = "Press 1-3 to pick a suggested question, Ctrl+C to quit."
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch key := msg.String(); key {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" && !m.waiting {
				return m.submit(q)
			}
		case "1", "2", "3":
			// Digits select suggested follow-ups only while the input is empty.
			if m.input.Value() == "" && !m.waiting {
				n, _ := strconv.Atoi(key)
				if n <= len(m.followUps) {
					return m.submit(m.followUps[n-1])
				}
			}
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit records the question in the transcript and fires the pipeline.
func (m Model) submit(q string) (tea.Model, tea.Cmd) {
	m.transcript = append(m.transcript, userStyle.Render("You: ")+q)
	m.followUps = nil
	m.waiting = true
	m.status = "Thinking..."
	m.input.SetValue("")
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
	return m, m.sendCmd(q)
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	title := "Baby Steps"
	if child := m.session.Child(); child != nil && child.Name != "" {
		title = fmt.Sprintf("Baby Steps - %s", child.Name)
	}
	header := headerStyle.Render(title)
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	if len(m.transcript) == 0 {
		return "No messages yet."
	}
	return strings.Join(m.transcript, "\n\n")
}

func (m Model) renderAnswer(turn *chat.Turn) string {
	var b strings.Builder
	b.WriteString(m.renderMessage(turn.Assistant))
	for i, q := range turn.FollowUps {
		b.WriteString(fmt.Sprintf("\n%s %s", followUpStyle.Render(fmt.Sprintf("[%d]", i+1)), q))
	}
	return b.String()
}

func (m Model) renderMessage(msg domain.ChatMessage) string {
	var b strings.Builder
	if msg.Sender == domain.SenderUser {
		b.WriteString(userStyle.Render("You: "))
	} else {
		b.WriteString(assistantStyle.Render("Assistant: "))
	}
	b.WriteString(msg.Content)
	if len(msg.Sources) > 0 {
		b.WriteString("\n" + sourceStyle.Render("Sources:"))
		for _, s := range msg.Sources {
			b.WriteString("\n" + sourceStyle.Render("  - "+s.Title+" ("+s.URL+")"))
		}
	}
	return b.String()
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headerStyle        = lipgloss.NewStyle().Bold(true)
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	sourceStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	followUpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
