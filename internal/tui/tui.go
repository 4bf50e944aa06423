// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-ambient/internal/mixer"
	"github.com/hazadus/go-ambient/internal/tui/mixerlist"
)

// App представляет основное TUI приложение
type App struct {
	mixer *mixer.Mixer
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(m *mixer.Mixer) *App {
	return &App{
		mixer: m,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	// Создаем модель для Bubble Tea
	model := mixerlist.NewModel(tuiApp.mixer)

	// Создаем программу Bubble Tea
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Запускаем программу
	_, err := p.Run()

	// Останавливаем все звуки после завершения программы
	tuiApp.mixer.StopAll()

	return err
}
