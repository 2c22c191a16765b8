package ui

import (
	"context"
	"strings"

	"shapegen/internal/server"
	"shapegen/internal/shape"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Generator is the pipeline the interactive session calls for each command.
type Generator interface {
	Generate(ctx context.Context, command string) (shape.Shape, error)
}

// Entry is one submitted command and its result.
type Entry struct {
	Command string
	Shape   shape.Shape
	Err     error
}

type resultMsg struct{ Entry }

// Model is the bubbletea model for `shapegen interactive`.
type Model struct {
	gen        Generator
	input      textinput.Model
	history    []Entry
	maxHistory int
	styles     Styles
	opts       RenderOptions
	width      int
	busy       bool
	quitting   bool
}

// NewModel creates an interactive session. maxHistory caps the scrollback.
func NewModel(gen Generator, styles Styles, opts RenderOptions, maxHistory int) Model {
	ti := textinput.New()
	ti.Placeholder = "Draw a circle with a radius of 100"
	ti.Prompt = "› "
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	if maxHistory <= 0 {
		maxHistory = 50
	}
	return Model{
		gen:        gen,
		input:      ti,
		maxHistory: maxHistory,
		styles:     styles,
		opts:       opts,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			command := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			switch strings.ToLower(command) {
			case "":
				return m, nil
			case "quit", "exit":
				m.quitting = true
				return m, tea.Quit
			case "clear":
				m.history = nil
				return m, nil
			}
			m.busy = true
			return m, m.generate(command)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-6, 20)
		return m, nil

	case resultMsg:
		m.busy = false
		m.history = append(m.history, msg.Entry)
		if over := len(m.history) - m.maxHistory; over > 0 {
			m.history = m.history[over:]
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) generate(command string) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		s, err := gen.Generate(context.Background(), command)
		return resultMsg{Entry{Command: command, Shape: s, Err: err}}
	}
}

// History returns the submitted commands, oldest first.
func (m Model) History() []Entry {
	return append([]Entry(nil), m.history...)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("shapegen"))
	sb.WriteString(" ")
	sb.WriteString(m.styles.Subtitle.Render("describe a shape, get its coordinates"))
	sb.WriteString("\n\n")

	for _, e := range m.history {
		sb.WriteString(m.styles.Prompt.Render("› "))
		sb.WriteString(m.styles.UserInput.Render(e.Command))
		sb.WriteString("\n")
		if e.Err != nil {
			sb.WriteString(m.styles.Result.Render(RenderError(server.FailureMessage(e.Err), m.styles)))
		} else {
			sb.WriteString(m.styles.Result.Render(strings.TrimRight(RenderShape(e.Shape, m.styles, m.opts), "\n")))
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.busy {
		sb.WriteString(m.styles.Muted.Render("working..."))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Muted.Render("enter: draw • clear: reset history • esc/ctrl+c: quit"))
	sb.WriteString("\n")
	return sb.String()
}
