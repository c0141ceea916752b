package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/core"
)

// PursuitSelection holds the user's choice from the difficulty menu.
type PursuitSelection struct {
	Difficulty config.DifficultyPreset
}

var difficultyOptions = []struct {
	preset config.DifficultyPreset
	label  string
	blurb  string
}{
	{config.DifficultyEasy, "Easy", "3 hunters, short sight, slow waves"},
	{config.DifficultyNormal, "Normal", "4 hunters, standard tuning"},
	{config.DifficultyHard, "Hard", "6 hunters, long sight, fast waves"},
}

// PursuitMenuModel lets users choose a difficulty tier before playing.
type PursuitMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection PursuitSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewPursuitMenuModel creates a new difficulty selection model.
func NewPursuitMenuModel(width, height int) PursuitMenuModel {
	return PursuitMenuModel{
		cursor:    1, // Normal pre-selected
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m PursuitMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PursuitMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PursuitMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = PursuitSelection{Difficulty: difficultyOptions[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty menu.
func (m PursuitMenuModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("GRID PURSUIT", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your difficulty", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, opt.label, opt.blurb)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// RunPursuitMenu shows the difficulty selector.
// Returns nil selection if the user backed out or quit.
func RunPursuitMenu(cfg core.RuntimeConfig) (*PursuitSelection, core.RuntimeConfig, error) {
	model := NewPursuitMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(PursuitMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	cfg.ScreenW = m.width
	cfg.ScreenH = m.height

	if m.quitting || m.back || m.choosing {
		return nil, cfg, nil
	}

	selection := m.selection
	return &selection, cfg, nil
}
