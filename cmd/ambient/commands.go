package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ambient",
		Short: "Ambient sound player for the terminal",
		Long:  `Play looping and randomized ambient sounds (rain, fireplace, cafe, thunder) with per-sound volume and global mute.`,
		Run: func(_ *cobra.Command, _ []string) {
			// Без аргументов запускаем интерактивный микшер
			app.launchTUI()
		},
	}

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createSoundsCommand())
	rootCmd.AddCommand(app.createPlayCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
