// Package settings отвечает за сохранение пользовательских настроек звуков
package settings

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings хранит настройки, переживающие перезапуск приложения:
// громкости ползунков, паузы между вариантами и флаг приглушения
type Settings struct {
	Volumes   map[string]float64 `yaml:"volumes"`
	Intervals map[string]float64 `yaml:"intervals"`
	Muted     bool               `yaml:"muted"`
}

// New создает пустые настройки с инициализированными картами
func New() *Settings {
	return &Settings{
		Volumes:   make(map[string]float64),
		Intervals: make(map[string]float64),
	}
}

// Load загружает настройки из файла. Отсутствующий, пустой или
// испорченный файл дает пустые настройки: загрузка никогда не падает.
func Load(filePath string) *Settings {
	path, err := expandTilde(filePath)
	if err != nil {
		return New()
	}

	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return New()
	}

	s := New()
	if err := yaml.Unmarshal(data, s); err != nil {
		// Испорченный файл равнозначен отсутствующему
		return New()
	}
	if s.Volumes == nil {
		s.Volumes = make(map[string]float64)
	}
	if s.Intervals == nil {
		s.Intervals = make(map[string]float64)
	}
	return s
}

// Save сохраняет настройки в файл
func (s *Settings) Save(filePath string) error {
	path, err := expandTilde(filePath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("ошибка сериализации настроек: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла настроек: %w", err)
	}
	return nil
}

// expandTilde раскрывает тильду в пути до домашнего каталога
func expandTilde(filePath string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(filePath, "~", home, 1), nil
}

// Bridge сохраняет настройки при каждом изменении состояния микшера.
// Ошибки записи логируются и не распространяются дальше.
type Bridge struct {
	mutex sync.Mutex
	path  string
}

// NewBridge создает мост сохранения для указанного файла настроек
func NewBridge(path string) *Bridge {
	return &Bridge{path: path}
}

// Update сохраняет очередной снимок состояния микшера
func (b *Bridge) Update(volumes, intervals map[string]float64, muted bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	s := &Settings{
		Volumes:   volumes,
		Intervals: intervals,
		Muted:     muted,
	}
	if err := s.Save(b.path); err != nil {
		log.Printf("не удалось сохранить настройки: %v", err)
	}
}
