package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/token-settings/internal/ui/style"
)

// FieldType represents the type of form field
type FieldType int

const (
	FieldTypeText FieldType = iota
	FieldTypeNumber
)

// FormField represents a single form field
type FormField struct {
	Name        string
	Label       string
	Type        FieldType
	Value       string
	Placeholder string
	Required    bool

	textInput textinput.Model
}

// FieldChange reports that a field's text changed.
type FieldChange struct {
	Name  string
	Value string
}

// Form represents a form component with multiple fields
type Form struct {
	fields     []FormField
	focusIndex int
	width      int

	// Styling
	labelStyle   lipgloss.Style
	inputStyle   lipgloss.Style
	focusedStyle lipgloss.Style
	buttonStyle  lipgloss.Style

	submitLabel string
}

// NewForm creates a new form component
func NewForm() *Form {
	palette := style.DefaultPalette()

	return &Form{
		fields: make([]FormField, 0),

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true).
			MarginRight(1),

		inputStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Background(palette.BackgroundAlt).
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(palette.TextMuted),

		focusedStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Background(palette.BackgroundAlt).
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(palette.Primary),

		buttonStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Background(palette.Secondary).
			Padding(0, 2).
			MarginTop(1),
	}
}

// AddField adds a field to the form
func (f *Form) AddField(name string, fieldType FieldType, label string, required bool, placeholder string) *Form {
	ti := textinput.New()
	ti.Width = 30
	ti.Placeholder = placeholder
	if fieldType == FieldTypeNumber && placeholder == "" {
		ti.Placeholder = "0"
	}

	f.fields = append(f.fields, FormField{
		Name:        name,
		Label:       label,
		Type:        fieldType,
		Placeholder: placeholder,
		Required:    required,
		textInput:   ti,
	})

	// Focus first field
	if len(f.fields) == 1 {
		f.fields[0].textInput.Focus()
	}

	return f
}

// SetSubmitLabel sets the text of the submit button shown under the fields.
func (f *Form) SetSubmitLabel(label string) *Form {
	f.submitLabel = label
	return f
}

// SetFieldValue sets the value of a field
func (f *Form) SetFieldValue(name, value string) *Form {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].Value = value
			f.fields[i].textInput.SetValue(value)
			break
		}
	}
	return f
}

// GetValue returns the value of a specific field
func (f *Form) GetValue(name string) string {
	for _, field := range f.fields {
		if field.Name == name {
			return field.Value
		}
	}
	return ""
}

// SetWidth sets the form width
func (f *Form) SetWidth(width int) *Form {
	f.width = width
	inputWidth := width - 4 // Account for padding and borders
	if inputWidth > 10 {
		for i := range f.fields {
			f.fields[i].textInput.Width = inputWidth
		}
	}
	return f
}

// Update forwards input to the focused field. The returned changes list the
// fields whose text differs after the update.
func (f *Form) Update(msg tea.Msg) (*Form, []FieldChange, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			f.moveFocus(1)
			return f, nil, nil
		case "shift+tab":
			f.moveFocus(-1)
			return f, nil, nil
		}
	}

	field := &f.fields[f.focusIndex]
	var cmd tea.Cmd
	field.textInput, cmd = field.textInput.Update(msg)

	var changes []FieldChange
	if v := field.textInput.Value(); v != field.Value {
		field.Value = v
		changes = append(changes, FieldChange{Name: field.Name, Value: v})
	}
	return f, changes, cmd
}

// View renders the form
func (f *Form) View() string {
	if len(f.fields) == 0 {
		return "No fields defined"
	}

	var content strings.Builder
	for i, field := range f.fields {
		label := field.Label
		if field.Required {
			label += " *"
		}
		content.WriteString(f.labelStyle.Render(label))
		content.WriteString("\n")

		fieldStyle := f.inputStyle
		if i == f.focusIndex {
			fieldStyle = f.focusedStyle
		}
		content.WriteString(fieldStyle.Render(field.textInput.View()))
		content.WriteString("\n")
	}

	if f.submitLabel != "" {
		content.WriteString(f.buttonStyle.Render(f.submitLabel))
		content.WriteString("\n")
	}

	return content.String()
}

func (f *Form) moveFocus(delta int) {
	f.fields[f.focusIndex].textInput.Blur()
	f.focusIndex = (f.focusIndex + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focusIndex].textInput.Focus()
}
