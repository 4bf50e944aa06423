package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindInPrimaryDir(t *testing.T) {
	// Создаем временный каталог с файлом в корне
	tempDir := t.TempDir()
	primaryPath := filepath.Join(tempDir, "rain.mp3")
	if err := os.WriteFile(primaryPath, []byte("dummy"), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	locator := NewLocator(tempDir)

	path, err := locator.Find("rain", "mp3")
	if err != nil {
		t.Fatalf("Ошибка поиска файла: %v", err)
	}
	if path != primaryPath {
		t.Errorf("Ожидался путь %s, получено: %s", primaryPath, path)
	}
}

func TestFindInFallbackDir(t *testing.T) {
	// Файл лежит только в подкаталоге sounds
	tempDir := t.TempDir()
	soundsDir := filepath.Join(tempDir, FallbackDirName)
	if err := os.MkdirAll(soundsDir, 0755); err != nil {
		t.Fatalf("Ошибка создания подкаталога: %v", err)
	}
	fallbackPath := filepath.Join(soundsDir, "thunder-3.mp3")
	if err := os.WriteFile(fallbackPath, []byte("dummy"), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	locator := NewLocator(tempDir)

	path, err := locator.Find("thunder-3", "mp3")
	if err != nil {
		t.Fatalf("Ошибка поиска файла: %v", err)
	}
	if path != fallbackPath {
		t.Errorf("Ожидался путь %s, получено: %s", fallbackPath, path)
	}
}

func TestFindPrefersPrimaryDir(t *testing.T) {
	// Файл есть и в корне, и в подкаталоге - выбирается корень
	tempDir := t.TempDir()
	soundsDir := filepath.Join(tempDir, FallbackDirName)
	if err := os.MkdirAll(soundsDir, 0755); err != nil {
		t.Fatalf("Ошибка создания подкаталога: %v", err)
	}
	primaryPath := filepath.Join(tempDir, "cafe.mp3")
	if err := os.WriteFile(primaryPath, []byte("primary"), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	if err := os.WriteFile(filepath.Join(soundsDir, "cafe.mp3"), []byte("fallback"), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	locator := NewLocator(tempDir)

	path, err := locator.Find("cafe", "mp3")
	if err != nil {
		t.Fatalf("Ошибка поиска файла: %v", err)
	}
	if path != primaryPath {
		t.Errorf("Ожидался путь из корневого каталога %s, получено: %s", primaryPath, path)
	}
}

func TestFindMissingFile(t *testing.T) {
	locator := NewLocator(t.TempDir())

	// Отсутствующий файл - ошибка, но не паника
	_, err := locator.Find("ocean", "mp3")
	if err == nil {
		t.Error("Ожидалась ошибка при поиске отсутствующего файла")
	}
}

func TestDescribeUnreadableFile(t *testing.T) {
	// Для файла без тегов возвращаются метаданные из имени файла
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "fireplace.mp3")
	if err := os.WriteFile(path, []byte("not an mp3"), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	meta := Describe(path)
	if meta.Title != "fireplace" {
		t.Errorf("Ожидалось название fireplace, получено: %s", meta.Title)
	}
}

func TestDescribeMissingFile(t *testing.T) {
	meta := Describe("/non/existent/rain.mp3")
	if meta.Title != "rain" {
		t.Errorf("Ожидалось название rain, получено: %s", meta.Title)
	}
}
