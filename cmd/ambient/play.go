package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-ambient/internal/catalog"
)

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "play [sound id...]",
		Short: "Play ambient sounds until interrupted",
		Long:  `Start one or more catalog sounds by their IDs and keep playing until Ctrl+C.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.playSounds(ctx, args)
		},
	}
}

func (app *Application) playSounds(ctx context.Context, ids []string) error {
	m := app.buildMixer()
	defer m.StopAll()

	// Запускаем запрошенные звуки
	started := 0
	for _, id := range ids {
		sound, ok := catalog.ByID(m.Sounds(), id)
		if !ok {
			return fmt.Errorf("звука с ID %q нет в каталоге", id)
		}

		m.Play(sound)
		if m.IsPlaying(sound) {
			fmt.Printf("🔊 Играет: %s\n", sound.Name)
			started++
		} else {
			// Отсутствующий файл не прерывает запуск остальных звуков
			fmt.Printf("⚠️  Не удалось запустить: %s\n", sound.Name)
		}
	}

	if started == 0 {
		return fmt.Errorf("ни один звук не запустился")
	}

	fmt.Println()
	fmt.Println("🎮 Нажмите Ctrl+C для остановки")

	// Создаем канал для обработки сигналов прерывания
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case <-interrupt:
		fmt.Println("\n⏹️  Воспроизведение остановлено пользователем")
		return nil
	case <-ctx.Done():
		fmt.Println("\n🚫 Операция отменена")
		return ctx.Err()
	}
}
