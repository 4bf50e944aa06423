// Package audio содержит обертку над звуковым устройством на основе beep
package audio

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// Handle представляет один запущенный звук
type Handle interface {
	// SetVolume устанавливает громкость в диапазоне [0, 1], 0 - тишина
	SetVolume(volume float64)
	// Rewind сбрасывает позицию воспроизведения в начало
	Rewind() error
	// Start начинает воспроизведение, повторный вызов игнорируется
	Start()
	// Stop останавливает воспроизведение и освобождает ресурсы
	Stop()
}

// Device создает звуки для воспроизведения
type Device interface {
	// Looping создает зацикленный звук из файла
	Looping(path string) (Handle, error)
	// OneShot создает однократный звук из файла
	OneShot(path string) (Handle, error)
}

// sampleRate - частота, на которой работает динамик; все звуки
// передискретизируются к ней
const sampleRate = beep.SampleRate(44100)

// Speaker реализует Device поверх beep/speaker
type Speaker struct{}

// NewSpeaker создает устройство и настраивает динамик.
// Ошибка инициализации не фатальна: воспроизведение все равно
// будет пытаться запуститься со стандартным поведением.
func NewSpeaker() *Speaker {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("не удалось инициализировать динамик: %v", err)
	}

	return &Speaker{}
}

// Looping создает зацикленный звук из файла
func (s *Speaker) Looping(path string) (Handle, error) {
	return s.newHandle(path, true)
}

// OneShot создает однократный звук из файла
func (s *Speaker) OneShot(path string) (Handle, error) {
	return s.newHandle(path, false)
}

// newHandle открывает файл, декодирует его и собирает цепочку стримеров
func (s *Speaker) newHandle(path string, loop bool) (Handle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	// Выбираем декодер по расширению файла
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	case ".ogg":
		streamer, format, err = vorbis.Decode(file)
	default:
		file.Close()
		return nil, fmt.Errorf("неподдерживаемый формат аудио: %s", filepath.Ext(path))
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("ошибка декодирования аудио: %w", err)
	}

	// Для зацикленного звука оборачиваем стример в бесконечный повтор
	var source beep.Streamer = streamer
	if loop {
		source = beep.Loop(-1, streamer)
	}

	// Приводим частоту к частоте динамика
	if format.SampleRate != sampleRate {
		source = beep.Resample(4, format.SampleRate, sampleRate, source)
	}

	ctrl := &beep.Ctrl{Streamer: source}
	volume := &effects.Volume{
		Streamer: ctrl,
		Base:     2,
	}

	return &handle{
		file:     file,
		streamer: streamer,
		ctrl:     ctrl,
		volume:   volume,
	}, nil
}

// handle хранит ресурсы одного запущенного звука
type handle struct {
	mutex     sync.Mutex
	file      *os.File
	streamer  beep.StreamSeekCloser
	ctrl      *beep.Ctrl
	volume    *effects.Volume
	isStarted bool
	isStopped bool
}

// SetVolume устанавливает громкость звука
func (h *handle) SetVolume(volume float64) {
	exponent, silent := gainExponent(volume)

	speaker.Lock()
	h.volume.Volume = exponent
	h.volume.Silent = silent
	speaker.Unlock()
}

// Rewind сбрасывает позицию воспроизведения в начало
func (h *handle) Rewind() error {
	speaker.Lock()
	err := h.streamer.Seek(0)
	speaker.Unlock()

	if err != nil {
		return fmt.Errorf("ошибка сброса позиции: %w", err)
	}
	return nil
}

// Start передает цепочку стримеров динамику
func (h *handle) Start() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.isStarted || h.isStopped {
		return
	}
	h.isStarted = true

	speaker.Play(h.volume)
}

// Stop отключает звук от динамика и закрывает файл.
// Повторный вызов безопасен.
func (h *handle) Stop() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.isStopped {
		return
	}
	h.isStopped = true

	// Отцепляем стример: Ctrl с пустым стримером иссякает,
	// и динамик сам убирает его из микса. speaker.Clear не используется,
	// так как он оборвал бы и остальные звуки.
	speaker.Lock()
	h.ctrl.Streamer = nil
	speaker.Unlock()

	h.streamer.Close()
	h.file.Close()
}

// gainExponent переводит линейную громкость [0, 1] в показатель степени
// для effects.Volume с основанием 2. Значения вне диапазона приводятся к нему.
func gainExponent(volume float64) (exponent float64, silent bool) {
	if volume <= 0 {
		return 0, true
	}
	if volume > 1 {
		volume = 1
	}
	return math.Log2(volume), false
}
