package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkoenig/framesmith/pkg/scene"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// FramePickerModel - Interactive root-frame selection
// =============================================================================

// FramePickerModel is the bubbletea model for choosing which root frame
// of a multi-root document to compile.
type FramePickerModel struct {
	Roots    []*scene.Node
	Cursor   int
	Selected *scene.Node
}

// NewFramePickerModel creates a new frame picker model.
func NewFramePickerModel(roots []*scene.Node) FramePickerModel {
	return FramePickerModel{Roots: roots}
}

func (m FramePickerModel) Init() tea.Cmd {
	return nil
}

func (m FramePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Roots)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Roots[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FramePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Frame"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, root := range m.Roots {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name := root.Name
		if name == "" {
			name = "(unnamed)"
		}

		size := fmt.Sprintf("%g×%g", root.Width, root.Height)
		count := frameNodeCount(root)
		line := fmt.Sprintf("%s%-28s %10s  %s", cursor, name, size,
			listDimStyle.Render(fmt.Sprintf("%d nodes", count)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Roots))))

	return b.String()
}

// pickRoot runs the frame picker and returns the chosen root, or nil
// when the user quit without selecting.
func pickRoot(roots []*scene.Node) (*scene.Node, error) {
	model := NewFramePickerModel(roots)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("frame picker: %w", err)
	}
	if m, ok := final.(FramePickerModel); ok {
		return m.Selected, nil
	}
	return nil, nil
}

func frameNodeCount(root *scene.Node) int {
	count := 0
	scene.Walk(root, func(*scene.Node) bool {
		count++
		return true
	})
	return count
}
