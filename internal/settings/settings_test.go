package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "settings.yaml")

	// Сохраняем настройки
	s := New()
	s.Volumes["rain"] = 0.7
	s.Volumes["thunder"] = 0.5
	s.Intervals["thunder"] = 45
	s.Muted = true

	if err := s.Save(path); err != nil {
		t.Fatalf("Ошибка сохранения настроек: %v", err)
	}

	// Загружаем и проверяем
	loaded := Load(path)

	if loaded.Volumes["rain"] != 0.7 {
		t.Errorf("Ожидалась громкость rain 0.7, получено: %v", loaded.Volumes["rain"])
	}
	if loaded.Volumes["thunder"] != 0.5 {
		t.Errorf("Ожидалась громкость thunder 0.5, получено: %v", loaded.Volumes["thunder"])
	}
	if loaded.Intervals["thunder"] != 45 {
		t.Errorf("Ожидалась пауза thunder 45, получено: %v", loaded.Intervals["thunder"])
	}
	if !loaded.Muted {
		t.Error("Флаг приглушения должен сохраниться")
	}
}

func TestLoadMissingFile(t *testing.T) {
	// Отсутствующий файл дает пустые настройки без ошибки
	loaded := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))

	if loaded == nil {
		t.Fatal("Load всегда должен возвращать настройки")
	}
	if len(loaded.Volumes) != 0 || len(loaded.Intervals) != 0 || loaded.Muted {
		t.Error("Ожидались пустые настройки")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "empty.yaml")
	if err := os.WriteFile(path, []byte{}, 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	loaded := Load(path)

	if loaded.Volumes == nil || loaded.Intervals == nil {
		t.Error("Карты должны быть инициализированы даже для пустого файла")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "corrupt.yaml")

	corrupt := `volumes: [not a map
muted: maybe`
	if err := os.WriteFile(path, []byte(corrupt), 0644); err != nil {
		t.Fatalf("Ошбика создания тестового файла: %v", err)
	}

	// Испорченный файл равнозначен отсутствующему
	loaded := Load(path)

	if loaded == nil {
		t.Fatal("Load всегда должен возвращать настройки")
	}
	if len(loaded.Volumes) != 0 || loaded.Muted {
		t.Error("Ожидались пустые настройки для испорченного файла")
	}
}

func TestBridgeUpdate(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "settings.yaml")

	bridge := NewBridge(path)
	bridge.Update(
		map[string]float64{"cafe": 0.9},
		map[string]float64{"thunder": 20},
		false,
	)

	// Мост должен записать файл, пригодный для следующего запуска
	loaded := Load(path)
	if loaded.Volumes["cafe"] != 0.9 {
		t.Errorf("Ожидалась громкость cafe 0.9, получено: %v", loaded.Volumes["cafe"])
	}
	if loaded.Intervals["thunder"] != 20 {
		t.Errorf("Ожидалась пауза thunder 20, получено: %v", loaded.Intervals["thunder"])
	}
}
