package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-ambient/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal mixer for the ambient sound catalog.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.launchTUI()
		},
	}
}

func (app *Application) launchTUI() {
	// Собираем микшер и создаем экземпляр TUI приложения
	tuiApp := tui.NewApp(app.buildMixer())

	// Запускаем TUI
	if err := tuiApp.Run(); err != nil {
		// Если есть ошибка, выводим её и выходим
		// В реальном приложении можно было бы обработать это лучше
		panic(err)
	}
}
