package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justapithecus/gauge/indicator"
)

// sampleBarTotal drives the looping sample bar at the bottom of the preview.
const sampleBarTotal = 60

// barTickMsg advances the sample bar.
type barTickMsg time.Time

// PreviewModel is a Bubble Tea model animating every spinner preset and a
// sample determinate bar.
type PreviewModel struct {
	names    []string
	spinners []spinner.Model
	barPos   int
	quitting bool
}

// NewPreviewModel creates a preview over all built-in presets.
func NewPreviewModel() PreviewModel {
	names := indicator.PresetNames()
	spinners := make([]spinner.Model, len(names))
	for i, name := range names {
		spinners[i] = spinner.New(
			spinner.WithSpinner(indicator.PresetSpinner(name)),
			spinner.WithStyle(GlyphStyle),
		)
	}
	return PreviewModel{names: names, spinners: spinners}
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.spinners)+1)
	for i := range m.spinners {
		cmds = append(cmds, m.spinners[i].Tick)
	}
	cmds = append(cmds, barTick())
	return tea.Batch(cmds...)
}

func barTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return barTickMsg(t)
	})
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case barTickMsg:
		m.barPos = (m.barPos + 1) % (sampleBarTotal + 1)
		return m, barTick()

	case spinner.TickMsg:
		// Fan the tick out; each spinner model ignores ticks with a
		// foreign ID.
		cmds := make([]tea.Cmd, 0, len(m.spinners))
		for i := range m.spinners {
			var cmd tea.Cmd
			m.spinners[i], cmd = m.spinners[i].Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Spinner presets"))
	b.WriteString("\n\n")

	for i, name := range m.names {
		b.WriteString(NameStyle.Render(name))
		b.WriteString(m.spinners[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(NameStyle.Render("bar"))
	b.WriteString(BarStyle.Render(sampleBar(m.barPos)))
	b.WriteString("\n")

	b.WriteString(HelpStyle.Render("Press q to quit"))
	return b.String()
}

func sampleBar(pos int) string {
	fill := strings.Repeat(indicator.DefaultFill, pos/2)
	empty := strings.Repeat(indicator.DefaultEmpty, sampleBarTotal/2-pos/2)
	return "[" + fill + empty + "]"
}
