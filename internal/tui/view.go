package tui

import (
	"fmt"
	"strings"

	"batchrename/internal/wizard"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("batchrename"))
	b.WriteString("  ")
	b.WriteString(stageStyle.Render(fmt.Sprintf("[%d/%d] %s", int(m.ctrl.Stage())+1, wizard.StageCount, m.ctrl.Stage())))
	b.WriteString("\n\n")

	switch m.ctrl.Stage() {
	case wizard.SelectFolder:
		b.WriteString(m.viewSelectFolder())
	case wizard.SelectData:
		b.WriteString(m.viewSelectData())
	case wizard.BuildFormat:
		b.WriteString(m.viewBuildFormat())
	case wizard.Confirm:
		b.WriteString(m.viewConfirm())
	}

	if m.inputMode != inputNone {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewSelectFolder() string {
	var b strings.Builder
	if m.ctrl.Folder() == "" {
		b.WriteString("No folder selected.\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Folder: %s\n", m.ctrl.Folder()))
	b.WriteString(fmt.Sprintf("Extension: %s\n\n", extensionStyle.Render(m.ctrl.Extension())))
	files := m.ctrl.Files()
	for i, f := range files {
		if i >= 10 {
			b.WriteString(helpStyle.Render(fmt.Sprintf("  ... and %d more", len(files)-10)))
			b.WriteString("\n")
			break
		}
		b.WriteString(fmt.Sprintf("  %s\n", f.Name()))
	}
	return b.String()
}

func (m *Model) viewSelectData() string {
	var b strings.Builder
	if m.ctrl.TablePath() == "" {
		b.WriteString("No spreadsheet loaded.\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Spreadsheet: %s\n", m.ctrl.TablePath()))
	if m.filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s\n", m.filter))
	}
	b.WriteString("\n")
	for i, field := range m.visibleFields() {
		cursor := "  "
		if i == m.fieldCursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		line := fmt.Sprintf("%s %s", mark, field)
		if m.ctrl.IsFieldSelected(field) {
			line = selectedStyle.Render(fmt.Sprintf("[x] %s", field))
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m *Model) viewBuildFormat() string {
	var b strings.Builder
	builder := m.ctrl.Builder()
	fields := builder.Fields()

	cells := make([]string, 0, len(fields)*2)
	for i, field := range fields {
		style := markerStyle
		if i == m.markerCursor {
			style = markerActiveStyle
		}
		cells = append(cells, style.Render(field))
		if i < len(fields)-1 {
			cells = append(cells, fmt.Sprintf("%q", builder.Separator(i)))
		}
	}
	b.WriteString(strings.Join(cells, " "))
	b.WriteString(" " + extensionStyle.Render(m.ctrl.Extension()))
	b.WriteString("\n")

	if err := builder.Validate(); err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewConfirm() string {
	var b strings.Builder
	s := m.ctrl.Summary()
	b.WriteString(fmt.Sprintf("Folder:      %s\n", s.Folder))
	b.WriteString(fmt.Sprintf("Files:       %d\n", s.FileCount))
	b.WriteString(fmt.Sprintf("Spreadsheet: %s\n", s.TablePath))
	b.WriteString(fmt.Sprintf("Rows:        %d\n", s.RowCount))
	b.WriteString(fmt.Sprintf("Template:    %s\n", s.Template))

	if len(m.results) > 0 {
		b.WriteString("\n")
		for _, r := range m.results {
			if r.Error != nil {
				b.WriteString(errorStyle.Render(fmt.Sprintf("  %s: %v", r.SourcePath, r.Error)))
			} else {
				b.WriteString(fmt.Sprintf("  %s -> %s", r.SourcePath, r.DestinationPath))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) helpLine() string {
	if m.inputMode != inputNone {
		return "enter confirm • esc cancel"
	}
	common := " • esc back • q quit"
	next := ""
	if m.ctrl.Ready() {
		next = " • enter next"
	}
	switch m.ctrl.Stage() {
	case wizard.SelectFolder:
		keys := "o open folder • c clear"
		if m.ctrl.SplitCandidate() {
			keys += " • s split"
		}
		return keys + next + common
	case wizard.SelectData:
		return "o open spreadsheet • / filter • j/k move • space toggle" + next + common
	case wizard.BuildFormat:
		return "h/l move cursor • H/L move field • e edit separator • a accept" + next + common
	case wizard.Confirm:
		if m.done {
			return "q quit"
		}
		return "r run renames" + common
	}
	return strings.TrimPrefix(common, " • ")
}
