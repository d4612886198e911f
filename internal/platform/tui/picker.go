package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger/levels"
)

// PickerModel is the Bubble Tea model for choosing a level.
type PickerModel struct {
	entries     []levels.Entry
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keys        MenuKeyMap
	help        help.Model
	quitting    bool
	selected    *levels.Entry // Set when user selects a level
	openHistory bool          // True if user pressed Tab for history
}

// NewPickerModel creates a new level picker.
func NewPickerModel(entries []levels.Entry, cfg core.RuntimeConfig) PickerModel {
	return PickerModel{
		entries: entries,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.entries) > 0 {
			selected := m.entries[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit picker to start the game
		}

	case key.Matches(msg, m.keys.History):
		m.openHistory = true
		return m, tea.Quit

	default:
		// Digits pick by menu number, as in the console menu
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0]-'0') - 1; i < len(m.entries) {
				selected := m.entries[i]
				m.cursor = i
				m.selected = &selected
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  F R O G G E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(centerText(infoStyle.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s[%d]  %s", cursor, i+1, e.Name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpBarStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected entry, or nil if none selected.
func (m PickerModel) Selected() *levels.Entry {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history screen.
func (m PickerModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m PickerModel) Config() core.RuntimeConfig {
	return m.config
}

// PickerResult holds the result of running the picker.
type PickerResult struct {
	Entry        levels.Entry
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunPicker runs the picker and returns the selection result.
func RunPicker(entries []levels.Entry, cfg core.RuntimeConfig) (PickerResult, error) {
	model := NewPickerModel(entries, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{Config: cfg}, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickerResult{Config: cfg, Quit: true}, nil
	}

	result := PickerResult{Config: m.Config()}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.Selected() != nil:
		result.Entry = *m.Selected()
	default:
		result.Quit = true
	}

	return result, nil
}
