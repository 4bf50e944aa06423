package mixerlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-ambient/internal/assets"
	"github.com/hazadus/go-ambient/internal/audio"
	"github.com/hazadus/go-ambient/internal/catalog"
	"github.com/hazadus/go-ambient/internal/mixer"
)

// fakeHandle - минимальный плеер для тестов интерфейса
type fakeHandle struct{}

func (h *fakeHandle) SetVolume(float64) {}
func (h *fakeHandle) Rewind() error     { return nil }
func (h *fakeHandle) Start()            {}
func (h *fakeHandle) Stop()             {}

// fakeDevice всегда успешно создает поддельные плееры
type fakeDevice struct{ fail bool }

func (d *fakeDevice) Looping(string) (audio.Handle, error) {
	if d.fail {
		return nil, errors.New("отказ устройства")
	}
	return &fakeHandle{}, nil
}

func (d *fakeDevice) OneShot(string) (audio.Handle, error) {
	if d.fail {
		return nil, errors.New("отказ устройства")
	}
	return &fakeHandle{}, nil
}

// newTestModel создает модель микшера с полным набором файлов
func newTestModel(t *testing.T) *Model {
	t.Helper()

	tempDir := t.TempDir()
	sounds := catalog.Default()
	for _, s := range sounds {
		refs := s.Mode.FileRefs
		if s.Mode.Kind == catalog.KindLoop {
			refs = []string{s.Mode.FileRef}
		}
		for _, ref := range refs {
			path := filepath.Join(tempDir, ref+"."+s.FileExt)
			if err := os.WriteFile(path, []byte("dummy"), 0644); err != nil {
				t.Fatalf("Ошибка создания тестового файла: %v", err)
			}
		}
	}

	m := mixer.New(sounds, &fakeDevice{}, assets.NewLocator(tempDir), mixer.Options{})
	t.Cleanup(m.StopAll)

	return NewModel(m)
}

// update прогоняет сообщение через модель и возвращает её конкретный тип
func update(t *testing.T, m *Model, msg tea.Msg) (*Model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)
	model, ok := updated.(*Model)
	if !ok {
		t.Fatalf("Update вернул неожиданный тип модели: %T", updated)
	}
	return model, cmd
}

func TestNewModel(t *testing.T) {
	model := newTestModel(t)

	// Проверяем, что модель создалась корректно
	if model == nil {
		t.Fatal("NewModel returned nil")
	}
	if model.mixer == nil {
		t.Fatal("mixer is nil")
	}

	// В списке все звуки каталога
	if len(model.list.Items()) != 4 {
		t.Fatalf("Expected 4 items, got %d", len(model.list.Items()))
	}
}

func TestToggleKey(t *testing.T) {
	model := newTestModel(t)
	rain, _ := catalog.ByID(model.mixer.Sounds(), "rain")

	// Enter на первом элементе (rain) запускает звук
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if !model.mixer.IsPlaying(rain) {
		t.Error("Rain должен играть после Enter")
	}

	// Повторный Enter останавливает
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.mixer.IsPlaying(rain) {
		t.Error("Rain не должен играть после второго Enter")
	}
}

func TestVolumeKeys(t *testing.T) {
	model := newTestModel(t)
	rain, _ := catalog.ByID(model.mixer.Sounds(), "rain")

	// Минус уменьшает громкость на шаг
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if got := model.mixer.Volume(rain); got != 1-volumeStep {
		t.Errorf("Ожидалась громкость %v, получено: %v", 1-volumeStep, got)
	}

	// Плюс возвращает обратно, выше 1 громкость не уходит
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if got := model.mixer.Volume(rain); got != 1 {
		t.Errorf("Громкость должна упереться в 1, получено: %v", got)
	}
}

func TestMuteKey(t *testing.T) {
	model := newTestModel(t)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if !model.mixer.Muted() {
		t.Error("После нажатия m приглушение должно включиться")
	}

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if model.mixer.Muted() {
		t.Error("Повторное m должно снять приглушение")
	}
}

func TestIntervalKeysIgnoredForLoop(t *testing.T) {
	model := newTestModel(t)
	rain, _ := catalog.ByID(model.mixer.Sounds(), "rain")

	// Для зацикленного звука клавиши паузы ничего не делают
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	if got := model.mixer.Interval(rain); got != catalog.FallbackIntervalSeconds {
		t.Errorf("Пауза зацикленного звука не должна меняться, получено: %v", got)
	}
}

func TestQuitKey(t *testing.T) {
	model := newTestModel(t)

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !model.quitting {
		t.Error("После q модель должна завершаться")
	}
	if cmd == nil {
		t.Error("Ожидалась команда tea.Quit")
	}
}
