// Package catalog содержит описания доступных эмбиент-звуков
package catalog

import "fmt"

// Kind определяет режим воспроизведения звука
type Kind int

// Константы для режимов воспроизведения
const (
	// KindLoop - один файл, проигрываемый по бесконечному кругу
	KindLoop Kind = iota
	// KindIntervalRandom - случайный вариант, пауза, снова случайный вариант
	KindIntervalRandom
)

// IntervalConfig описывает допустимый диапазон паузы между вариантами
type IntervalConfig struct {
	Default float64 // Пауза по умолчанию в секундах
	Min     float64 // Минимальная пауза в секундах
	Max     float64 // Максимальная пауза в секундах
}

// Clamp приводит значение паузы к диапазону [Min, Max]
func (c IntervalConfig) Clamp(seconds float64) float64 {
	if seconds < c.Min {
		return c.Min
	}
	if seconds > c.Max {
		return c.Max
	}
	return seconds
}

// Mode описывает способ воспроизведения звука.
// Для KindLoop заполнен FileRef, для KindIntervalRandom - FileRefs и Interval.
type Mode struct {
	Kind     Kind
	FileRef  string          // Имя файла для зацикленного звука (без расширения)
	FileRefs []string        // Имена файлов вариантов в порядке нумерации
	Interval *IntervalConfig // Диапазон паузы, только для KindIntervalRandom
}

// Sound описывает один звук каталога
type Sound struct {
	ID      string // Стабильный идентификатор, используется как ключ всюду
	Name    string // Отображаемое название
	Icon    string // Эмодзи для интерфейса, ядро его не интерпретирует
	FileExt string // Расширение аудиофайлов звука
	Mode    Mode
}

// HasInterval возвращает true, если у звука настраиваемая пауза
func (s Sound) HasInterval() bool {
	return s.Mode.Kind == KindIntervalRandom && s.Mode.Interval != nil
}

// FallbackIntervalSeconds - пауза для звуков без собственной конфигурации
const FallbackIntervalSeconds = 30.0

// thunderVariants возвращает имена файлов вариантов грома
func thunderVariants() []string {
	refs := make([]string, 0, 11)
	for i := 1; i <= 11; i++ {
		refs = append(refs, fmt.Sprintf("thunder-%d", i))
	}
	return refs
}

// Default возвращает фиксированный каталог звуков приложения
func Default() []Sound {
	return []Sound{
		{
			ID:      "rain",
			Name:    "Rain",
			Icon:    "🌧️",
			FileExt: "mp3",
			Mode:    Mode{Kind: KindLoop, FileRef: "rain"},
		},
		{
			ID:      "fireplace",
			Name:    "Fireplace",
			Icon:    "🔥",
			FileExt: "mp3",
			Mode:    Mode{Kind: KindLoop, FileRef: "fireplace"},
		},
		{
			ID:      "cafe",
			Name:    "Cafe",
			Icon:    "☕",
			FileExt: "mp3",
			Mode:    Mode{Kind: KindLoop, FileRef: "cafe"},
		},
		{
			ID:      "thunder",
			Name:    "Thunder",
			Icon:    "⛈️",
			FileExt: "mp3",
			Mode: Mode{
				Kind:     KindIntervalRandom,
				FileRefs: thunderVariants(),
				Interval: &IntervalConfig{Default: 30, Min: 10, Max: 60},
			},
		},
	}
}

// ByID возвращает звук каталога по идентификатору
func ByID(sounds []Sound, id string) (Sound, bool) {
	for _, s := range sounds {
		if s.ID == id {
			return s, true
		}
	}
	return Sound{}, false
}
