package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StepView represents one pipeline step for display.
type StepView struct {
	Name    string
	Active  bool
	Done    bool
	Skipped bool
	Err     error
}

// Model is the Bubble Tea model for a pipeline run.
type Model struct {
	Title   string
	EnvName string
	Steps   []StepView

	StartTime    time.Time
	SpinnerFrame int

	Width   int
	Height  int
	Err     error
	Done    bool
	Aborted bool
}

// NewModel creates a model displaying the given pipeline steps.
func NewModel(title, envName string, stepNames []string) Model {
	steps := make([]StepView, 0, len(stepNames))
	for _, name := range stepNames {
		steps = append(steps, StepView{Name: name})
	}
	return Model{
		Title:     title,
		EnvName:   envName,
		Steps:     steps,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// Quitting mid-run is an abort, not a success: the caller
			// cancels the pipeline and reports a non-zero exit.
			if !m.Done && m.Err == nil {
				m.Aborted = true
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case StepMsg:
		m.updateStep(msg)
		if msg.Err != nil {
			m.Err = msg.Err
			return m, tea.Quit
		}

	case ErrMsg:
		m.Err = msg.Err
		// Pin the failure on the step that was running.
		for i := range m.Steps {
			if m.Steps[i].Active {
				m.Steps[i].Active = false
				m.Steps[i].Err = msg.Err
			}
		}
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %s", m.Title, m.EnvName)))
	b.WriteString("\n\n")

	for _, step := range m.Steps {
		switch {
		case step.Err != nil:
			b.WriteString(failedStyle.Render(crossMark) + " " + step.Name + failedStyle.Render(fmt.Sprintf(" — %v", step.Err)))
		case step.Skipped:
			b.WriteString(skippedStyle.Render(skipMark) + " " + dimStyle.Render(step.Name+" (skipped)"))
		case step.Done:
			b.WriteString(doneStyle.Render(checkMark) + " " + step.Name)
		case step.Active:
			b.WriteString(activeStyle.Render(currentSpinner(m.SpinnerFrame)) + " " + activeStyle.Render(step.Name))
		default:
			b.WriteString(dimStyle.Render(pending) + " " + dimStyle.Render(step.Name))
		}
		b.WriteString("\n")
	}

	elapsed := time.Since(m.StartTime).Round(time.Second)
	switch {
	case m.Done:
		b.WriteString(footerStyle.Render(fmt.Sprintf("Completed in %v", elapsed)))
	case m.Err != nil:
		b.WriteString(footerStyle.Render(fmt.Sprintf("Failed after %v", elapsed)))
	case m.Aborted:
		b.WriteString(footerStyle.Render(fmt.Sprintf("Aborted after %v", elapsed)))
	default:
		b.WriteString(footerStyle.Render(fmt.Sprintf("Elapsed %v — press q to abort", elapsed)))
	}
	b.WriteString("\n")

	return b.String()
}

// updateStep applies a StepMsg to the step list. A step starting marks
// every earlier incomplete step done, so a missed message cannot wedge
// the display.
func (m *Model) updateStep(msg StepMsg) {
	for i := range m.Steps {
		if m.Steps[i].Name != msg.Name {
			continue
		}
		m.Steps[i].Active = !msg.Done && msg.Err == nil && !msg.Skipped
		m.Steps[i].Done = msg.Done
		m.Steps[i].Skipped = msg.Skipped
		m.Steps[i].Err = msg.Err
		for j := 0; j < i; j++ {
			if !m.Steps[j].Done && !m.Steps[j].Skipped && m.Steps[j].Err == nil {
				m.Steps[j].Done = true
			}
			m.Steps[j].Active = false
		}
		return
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
