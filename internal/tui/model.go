// Package tui renders the four-stage rename wizard in the terminal. All
// business decisions live in the wizard controller; this model only
// translates key presses into controller calls and draws the result.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"batchrename/internal/config"
	"batchrename/internal/template"
	"batchrename/internal/wizard"
	"batchrename/pkg/types"
)

// Model is the bubbletea model wrapping the wizard controller.
type Model struct {
	ctrl *wizard.Controller

	input     textinput.Model
	inputMode inputMode

	// SelectData stage
	fieldCursor int
	filter      string

	// BuildFormat stage
	markerCursor int

	// Confirm stage
	results []types.RenameResult
	done    bool

	statusMsg string
	errMsg    string
	quitting  bool
}

type inputMode int

const (
	inputNone inputMode = iota
	inputFolder
	inputPages
	inputTable
	inputFilter
	inputSeparator
)

// New creates the wizard TUI over a fresh controller.
func New(cfg *config.Config) *Model {
	ti := textinput.New()
	ti.CharLimit = 512
	return &Model{
		ctrl:  wizard.New(cfg),
		input: ti,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputMode != inputNone {
		return m.updateInput(keyMsg)
	}
	return m.updateStage(keyMsg)
}

// updateInput routes keys to the focused text input.
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		value := m.input.Value()
		mode := m.inputMode
		m.closeInput()
		m.submitInput(mode, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.inputMode == inputFilter {
		m.filter = m.input.Value()
		m.fieldCursor = 0
	}
	return m, cmd
}

func (m *Model) openInput(mode inputMode, placeholder, value string) {
	m.inputMode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closeInput() {
	m.inputMode = inputNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) submitInput(mode inputMode, value string) {
	m.errMsg = ""
	switch mode {
	case inputFolder:
		if err := m.ctrl.SetFolder(value); err != nil {
			m.errMsg = err.Error()
			return
		}
		if m.ctrl.SplitCandidate() {
			m.statusMsg = "a single document was found; press s to split it into chunks"
		} else {
			m.statusMsg = fmt.Sprintf("%d files found", len(m.ctrl.Files()))
		}
	case inputPages:
		pages, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || pages < 1 {
			m.errMsg = "pages per chunk must be a positive integer"
			return
		}
		if err := m.ctrl.SplitFolder(pages); err != nil {
			m.errMsg = err.Error()
			return
		}
		m.statusMsg = fmt.Sprintf("split into %d chunks", len(m.ctrl.Files()))
	case inputTable:
		if err := m.ctrl.LoadTable(value); err != nil {
			m.errMsg = err.Error()
			return
		}
		m.fieldCursor = 0
		m.filter = ""
		m.statusMsg = fmt.Sprintf("%d fields available", len(m.ctrl.Fields()))
	case inputSeparator:
		if err := m.ctrl.Builder().SetSeparator(m.markerCursor, value); err != nil {
			m.errMsg = err.Error()
		}
	case inputFilter:
		m.filter = value
	}
}

// updateStage handles stage-level keys when no input is focused.
func (m *Model) updateStage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.ctrl.Ready() {
			if err := m.ctrl.Next(); err != nil {
				m.errMsg = err.Error()
			} else {
				m.statusMsg = ""
			}
		}
		return m, nil
	case "esc":
		if err := m.ctrl.Back(); err == nil {
			m.statusMsg = ""
		}
		return m, nil
	}

	switch m.ctrl.Stage() {
	case wizard.SelectFolder:
		return m.updateSelectFolder(msg)
	case wizard.SelectData:
		return m.updateSelectData(msg)
	case wizard.BuildFormat:
		return m.updateBuildFormat(msg)
	case wizard.Confirm:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m *Model) updateSelectFolder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "o":
		m.openInput(inputFolder, "path to the folder to rename", m.ctrl.Folder())
	case "s":
		if m.ctrl.SplitCandidate() {
			m.openInput(inputPages, "pages per chunk", "")
		}
	case "c":
		m.ctrl.ClearFolder()
		m.statusMsg = ""
	}
	return m, nil
}

func (m *Model) updateSelectData(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.visibleFields()
	switch msg.String() {
	case "o":
		m.openInput(inputTable, "path to the spreadsheet (.xlsx or .csv)", m.ctrl.TablePath())
	case "/":
		m.openInput(inputFilter, "filter fields", m.filter)
	case "j", "down":
		if m.fieldCursor < len(fields)-1 {
			m.fieldCursor++
		}
	case "k", "up":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case " ":
		if m.fieldCursor < len(fields) {
			m.ctrl.ToggleField(fields[m.fieldCursor])
		}
	}
	return m, nil
}

func (m *Model) updateBuildFormat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	numFields := len(m.ctrl.Builder().Fields())
	switch msg.String() {
	case "h", "left":
		if m.markerCursor > 0 {
			m.markerCursor--
		}
	case "l", "right":
		if m.markerCursor < numFields-1 {
			m.markerCursor++
		}
	case "H", "shift+left":
		if m.markerCursor > 0 {
			m.ctrl.Builder().Move(m.markerCursor, m.markerCursor-1)
			m.markerCursor--
		}
	case "L", "shift+right":
		if m.markerCursor < numFields-1 {
			m.ctrl.Builder().Move(m.markerCursor, m.markerCursor+1)
			m.markerCursor++
		}
	case "e":
		if m.markerCursor < numFields-1 {
			m.openInput(inputSeparator, "separator text", m.ctrl.Builder().Separator(m.markerCursor))
		}
	case "a":
		if err := m.ctrl.AcceptTemplate(); err != nil {
			m.errMsg = err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("template accepted: %s", m.ctrl.Template().String())
		}
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		if m.done {
			return m, nil
		}
		results, err := m.ctrl.Execute()
		m.results = results
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.done = true
		m.statusMsg = fmt.Sprintf("renamed %d files", len(results))
	}
	return m, nil
}

// visibleFields applies the current filter to the selectable fields.
func (m *Model) visibleFields() []string {
	return template.Filter(m.ctrl.Fields(), m.filter)
}
