package portal

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	core "github.com/Paintersrp/sidoc/internal/portal"
	"github.com/Paintersrp/sidoc/internal/state"
)

// Run starts the portal on page, or on doc when one is given, and blocks
// until the user quits.
func Run(s *state.State, page core.Page, doc core.OptionalID) error {
	m, err := NewModel(s)
	if err != nil {
		return err
	}
	if err := m.Open(page, doc); err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running portal: %w", err)
	}
	return nil
}
