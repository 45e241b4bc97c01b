package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/slightlynybbled/brainfuck/engine"
	"github.com/slightlynybbled/brainfuck/program"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	variantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	pointerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// The playground always runs bounded so a runaway program cannot hang the
// terminal.
const playgroundStepLimit = 50_000_000

// tapeWindow is how many cells around the data pointer the result view shows.
const tapeWindow = 12

type modelState int

const (
	stateEdit modelState = iota
	stateRunning
	stateShowResult
)

type playgroundModel struct {
	err      error
	output   string
	tape     []uint64
	programI textinput.Model
	inputI   textinput.Model
	variant  engine.Variant
	pointer  int
	steps    uint64
	focusIdx int
	state    modelState
}

func newPlaygroundModel() *playgroundModel {
	prog := textinput.New()
	prog.Placeholder = "++++++++[>++++++++<-]>+."
	prog.Prompt = "program: "
	prog.Width = 60
	prog.Focus()

	input := textinput.New()
	input.Placeholder = "data consumed by ','"
	input.Prompt = "input:   "
	input.Width = 60

	return &playgroundModel{
		programI: prog,
		inputI:   input,
		variant:  engine.VariantClassic,
	}
}

type resultMsg struct {
	err     error
	output  string
	tape    []uint64
	pointer int
	steps   uint64
}

func (m *playgroundModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playgroundModel) runProgram() tea.Msg {
	prog, err := program.Load(m.programI.Value())
	if err != nil {
		return resultMsg{err: err}
	}

	// Drive the engine directly so the result view can show the tape.
	machine, err := engine.New(prog, engine.Config{
		Variant:   m.variant,
		StepLimit: playgroundStepLimit,
		Input:     strings.NewReader(m.inputI.Value()),
	})
	if err != nil {
		return resultMsg{err: err}
	}

	output, err := machine.Run()
	return resultMsg{
		err:     err,
		output:  output,
		tape:    machine.Tape(),
		pointer: machine.Pointer(),
		steps:   machine.Steps(),
	}
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateEdit {
				return m, tea.Quit
			}

		case "tab":
			if m.state == stateEdit {
				if m.focusIdx == 0 {
					m.programI.Blur()
					m.inputI.Focus()
					m.focusIdx = 1
				} else {
					m.inputI.Blur()
					m.programI.Focus()
					m.focusIdx = 0
				}
				return m, nil
			}

		case "ctrl+v":
			if m.state == stateEdit {
				m.variant = (m.variant + 1) % engine.Variant(len(engine.Variants()))
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateEdit:
				m.state = stateRunning
				return m, m.runProgram
			case stateShowResult:
				m.state = stateEdit
				m.output = ""
				m.err = nil
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateEdit
				m.output = ""
				m.err = nil
			}
		}

	case resultMsg:
		m.output = msg.output
		m.tape = msg.tape
		m.pointer = msg.pointer
		m.steps = msg.steps
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateEdit {
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.programI, cmd = m.programI.Update(msg)
		cmds = append(cmds, cmd)
		m.inputI, cmd = m.inputI.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *playgroundModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Brainfuck Playground"))
	b.WriteString(" variant: ")
	b.WriteString(variantStyle.Render(m.variant.String()))
	b.WriteString("\n\n")

	switch m.state {
	case stateEdit:
		b.WriteString(m.programI.View())
		b.WriteString("\n")
		b.WriteString(m.inputI.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab switch field • ctrl+v cycle variant • enter run • ctrl+c quit"))

	case stateRunning:
		b.WriteString("Running...")

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString("Output:\n")
			b.WriteString(resultStyle.Render(fmt.Sprintf("%q", m.output)))
		}
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "Steps: %d\n", m.steps)
		if len(m.tape) > 0 {
			b.WriteString("Tape:  ")
			b.WriteString(m.renderTape())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter edit • q quit"))
	}

	return b.String()
}

// renderTape shows a window of cells centered on the data pointer, with the
// pointed-at cell highlighted.
func (m *playgroundModel) renderTape() string {
	lo := m.pointer - tapeWindow/2
	if lo < 0 {
		lo = 0
	}
	hi := lo + tapeWindow
	if hi > len(m.tape) {
		hi = len(m.tape)
	}

	var cells []string
	if lo > 0 {
		cells = append(cells, "…")
	}
	for i := lo; i < hi; i++ {
		cell := fmt.Sprintf("%d", m.tape[i])
		if i == m.pointer {
			cells = append(cells, pointerStyle.Render(cell))
		} else {
			cells = append(cells, cellStyle.Render(cell))
		}
	}
	if hi < len(m.tape) {
		cells = append(cells, "…")
	}
	return strings.Join(cells, " ")
}

func runInteractive() error {
	p := tea.NewProgram(newPlaygroundModel())
	_, err := p.Run()
	return err
}
