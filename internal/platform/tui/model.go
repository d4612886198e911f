package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	winStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	loseStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for playing one frogger session. Obstacles
// only move when a command is submitted; there is no tick loop.
type Model struct {
	session  *frogger.Session
	commands frogger.Keymap
	keys     PlayKeyMap
	input    textinput.Model
	help     help.Model
	pending  *frogger.Command // Bare jump waiting for its coordinates
	message  string
	last     frogger.Turn
	width    int
	height   int
	quitting bool
}

// NewModel creates a play model for the session.
func NewModel(s *frogger.Session, commands frogger.Keymap, cfg core.RuntimeConfig) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = commands.Hint()
	in.CharLimit = 32
	in.Width = 32
	in.Focus()

	return Model{
		session:  s,
		commands: commands,
		keys:     DefaultPlayKeyMap(),
		input:    in,
		help:     help.New(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.session.Quit()
		m.quitting = true
		return m, tea.Quit
	}

	// Any key leaves the final screen
	if m.session.Status().Terminal() {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.pending != nil {
			m.clearPending()
			m.message = "Jump cancelled."
			return m, nil
		}
		m.session.Quit()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	if m.input.Value() == "" && m.pending == nil {
		if action := m.keys.ArrowAction(msg); action != core.ActionNone {
			m.step(frogger.Command{Action: action, Raw: msg.String()})
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit plays the typed line, asking for coordinates after a bare jump.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	if m.pending != nil {
		cmd := m.pending.WithJumpText(line)
		m.clearPending()
		m.step(cmd)
		return m, nil
	}

	cmd := m.commands.Parse(line)
	if cmd.NeedsTarget() {
		m.pending = &cmd
		m.input.Placeholder = "row col"
		m.message = "Enter jump position (row col):"
		return m, nil
	}

	m.step(cmd)
	return m, nil
}

func (m *Model) clearPending() {
	m.pending = nil
	m.input.Placeholder = m.commands.Hint()
}

// step plays one command and records the outcome message.
func (m *Model) step(cmd frogger.Command) {
	m.last = m.session.Step(cmd)
	m.message = frogger.Message(m.last, m.commands)
	if m.session.Status().Terminal() {
		m.input.Blur()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	lvl := m.session.Level()

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("F R O G G E R"))
	b.WriteString("  ")
	b.WriteString(infoStyle.Render(fmt.Sprintf("%s  |  turn %d  |  frog at %v", lvl.Name, m.session.Turns(), m.session.Token())))
	b.WriteString("\n\n")

	b.WriteString(boardStyle.Render(RenderScreen(m.session.Screen())))
	b.WriteString("\n\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.session.Status().Terminal() {
		b.WriteString(infoStyle.Render("Press any key to exit."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpBarStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// statusLine styles the last message by outcome.
func (m Model) statusLine() string {
	switch {
	case m.session.Status() == frogger.StatusWon:
		return winStyle.Render(m.message)
	case frogger.IsFatal(m.last.Err), m.session.Status() == frogger.StatusAborted:
		msg := m.message
		if msg == "" && m.session.Err() != nil {
			msg = fmt.Sprintf("Game aborted: %v", m.session.Err())
		}
		return loseStyle.Render(msg)
	}
	if m.message == "" {
		return infoStyle.Render("Type a command and press enter, or use the arrow keys.")
	}
	return warnStyle.Render(m.message)
}

// Session returns the session being played.
func (m Model) Session() *frogger.Session {
	return m.session
}

// Run plays the session in a full-screen Bubble Tea program and returns its
// final status.
func Run(s *frogger.Session, commands frogger.Keymap, cfg core.RuntimeConfig) (frogger.Status, error) {
	model := NewModel(s, commands, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		s.Abort(fmt.Errorf("tui: %w", err))
		return s.Status(), err
	}

	// Closing the program without finishing counts as quitting
	s.Quit()
	return s.Status(), s.Err()
}
