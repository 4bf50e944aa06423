// Package assets отвечает за поиск упакованных аудиофайлов и чтение их метаданных
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"
)

// FallbackDirName - подкаталог, в котором файлы ищутся вторым заходом
const FallbackDirName = "sounds"

// Locator ищет аудиофайлы в каталоге приложения
type Locator struct {
	baseDir string
}

// NewLocator создает новый локатор для указанного каталога
func NewLocator(baseDir string) *Locator {
	return &Locator{baseDir: baseDir}
}

// BaseDir возвращает корневой каталог поиска
func (l *Locator) BaseDir() string {
	return l.baseDir
}

// Find ищет файл по логическому имени и расширению.
// Порядок поиска: корневой каталог, затем подкаталог sounds.
// Отсутствие файла - штатная ситуация, возвращается ошибка без паники.
func (l *Locator) Find(name, ext string) (string, error) {
	fileName := fmt.Sprintf("%s.%s", name, ext)

	primary := filepath.Join(l.baseDir, fileName)
	if _, err := os.Stat(primary); err == nil {
		return primary, nil
	}

	fallback := filepath.Join(l.baseDir, FallbackDirName, fileName)
	if _, err := os.Stat(fallback); err == nil {
		return fallback, nil
	}

	return "", fmt.Errorf("аудиофайл %s не найден в %s", fileName, l.baseDir)
}

// Meta хранит метаданные аудиофайла для отображения в списке звуков
type Meta struct {
	Title  string
	Artist string
}

// Describe читает теги аудиофайла. Любая ошибка чтения превращается
// в метаданные по умолчанию на основе имени файла.
func Describe(filePath string) Meta {
	file, err := os.Open(filePath)
	if err != nil {
		return defaultMeta(filePath)
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return defaultMeta(filePath)
	}

	meta := Meta{
		Title:  metadata.Title(),
		Artist: metadata.Artist(),
	}
	if meta.Title == "" {
		meta.Title = defaultMeta(filePath).Title
	}
	return meta
}

// Duration получает длительность MP3 файла
func Duration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// defaultMeta возвращает метаданные на основе имени файла
func defaultMeta(filePath string) Meta {
	fileName := filepath.Base(filePath)
	return Meta{
		Title: strings.TrimSuffix(fileName, filepath.Ext(fileName)),
	}
}
