package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	ports "portfolio-gallery-service/internal/core/ports/output"
	"portfolio-gallery-service/internal/core/services"
)

// Run opens the terminal gallery over catalog. settled is the channel of
// the validation pass in flight, if any.
func Run(catalog *services.CatalogService, settled <-chan struct{}, lang string, tr ports.Translator) error {
	m := newModel(catalog, settled, lang, tr)
	defer m.modal.Teardown()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
