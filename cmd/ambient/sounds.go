package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-ambient/internal/assets"
	"github.com/hazadus/go-ambient/internal/catalog"
	"github.com/hazadus/go-ambient/internal/utils"
)

// createSoundsCommand создает команду sounds с привязкой к экземпляру приложения
func (app *Application) createSoundsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sounds",
		Short: "List catalog sounds and their assets",
		Long:  `Display the sound catalog with playback modes and the status of audio files in the sounds directory.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.listSounds()
		},
	}
}

func (app *Application) listSounds() {
	locator := assets.NewLocator(app.Config.SoundsDir)
	sounds := catalog.Default()

	fmt.Printf("📚 Звуков в каталоге: %d (файлы в %s)\n\n", len(sounds), app.Config.SoundsDir)

	// Выводим заголовок таблицы
	fmt.Printf("%-12s %-12s %-10s %-9s %-8s %-30s\n",
		"ID", "Название", "Режим", "Варианты", "Пауза", "Файлы")
	fmt.Println(strings.Repeat("-", 86))

	// Выводим каждый звук
	for _, s := range sounds {
		mode := "loop"
		refs := []string{s.Mode.FileRef}
		interval := "—"
		if s.Mode.Kind == catalog.KindIntervalRandom {
			mode = "interval"
			refs = s.Mode.FileRefs
			if s.HasInterval() {
				interval = utils.FormatSeconds(s.Mode.Interval.Default)
			}
		}

		// Считаем найденные файлы, у первого читаем теги и длительность
		found := 0
		detail := ""
		for _, ref := range refs {
			path, err := locator.Find(ref, s.FileExt)
			if err != nil {
				continue
			}
			if found == 0 {
				detail = utils.TruncateString(assets.Describe(path).Title, 20)
				if d, err := assets.Duration(path); err == nil {
					detail += fmt.Sprintf(", %s", utils.FormatSeconds(d.Seconds()))
				}
			}
			found++
		}

		files := fmt.Sprintf("%d/%d", found, len(refs))
		if found == 0 {
			files += " (не найдены)"
		} else if detail != "" {
			files += fmt.Sprintf(" (%s)", detail)
		}

		fmt.Printf("%-12s %-12s %-10s %-9d %-8s %-30s\n",
			s.ID, utils.TruncateString(s.Name, 12), mode, len(refs), interval, files)
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'ambient play [ID]' или 'ambient tui' для воспроизведения")
}
