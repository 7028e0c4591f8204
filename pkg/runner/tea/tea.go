package teaui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/lifeos/pkg/app"
)

// Run launches the interactive TUI program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
