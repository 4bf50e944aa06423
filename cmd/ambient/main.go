package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hazadus/go-ambient/internal/assets"
	"github.com/hazadus/go-ambient/internal/audio"
	"github.com/hazadus/go-ambient/internal/catalog"
	"github.com/hazadus/go-ambient/internal/config"
	"github.com/hazadus/go-ambient/internal/mixer"
	"github.com/hazadus/go-ambient/internal/settings"
)

const (
	defaultConfigPath = "~/.ambient.yaml"
)

// Application хранит зависимости, общие для всех команд
type Application struct {
	Config   *config.Config
	Settings *settings.Settings
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Загружаем сохраненные настройки звуков
	app := &Application{
		Config:   cfg,
		Settings: settings.Load(cfg.SettingsFile),
	}

	rootCmd := app.createRootCommand(context.Background())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildMixer собирает микшер с реальным устройством и подключает
// сохранение настроек при каждом изменении состояния
func (app *Application) buildMixer() *mixer.Mixer {
	locator := assets.NewLocator(app.Config.SoundsDir)
	device := audio.NewSpeaker()

	m := mixer.New(catalog.Default(), device, locator, mixer.Options{
		Volumes:   app.Settings.Volumes,
		Intervals: app.Settings.Intervals,
		Muted:     app.Settings.Muted,
	})

	// Каталог настроек может отсутствовать при первом запуске
	if err := os.MkdirAll(filepath.Dir(app.Config.SettingsFile), 0755); err != nil {
		log.Printf("не удалось создать каталог настроек: %v", err)
	}

	bridge := settings.NewBridge(app.Config.SettingsFile)
	m.OnChange(func(snap mixer.Snapshot) {
		bridge.Update(snap.Volumes, snap.Intervals, snap.Muted)
	})

	return m
}
