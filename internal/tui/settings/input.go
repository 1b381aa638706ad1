package settings

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

type ListInputModel struct {
	Title string
	Input textinput.Model
}

func initialInputModel() ListInputModel {
	t := textinput.New()
	t.Cursor.Style = cursorStyle
	t.PromptStyle = focusedStyle
	t.TextStyle = focusedStyle
	t.CharLimit = 256

	return ListInputModel{Input: t}
}

func (m ListInputModel) View() string {
	return textStyle.Render(fmt.Sprintf("Editing: %s\n%s", m.Title, m.Input.View()))
}
