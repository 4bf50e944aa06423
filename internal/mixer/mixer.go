// Package mixer содержит координатор воспроизведения эмбиент-звуков
package mixer

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hazadus/go-ambient/internal/assets"
	"github.com/hazadus/go-ambient/internal/audio"
	"github.com/hazadus/go-ambient/internal/catalog"
)

// Snapshot представляет наблюдаемое состояние микшера.
// Карты скопированы, получатель может свободно их хранить.
type Snapshot struct {
	Playing   []string
	Volumes   map[string]float64
	Intervals map[string]float64
	Muted     bool
}

// Options содержит начальное состояние микшера, загруженное из настроек.
// Лишние и отсутствующие ключи допустимы, значения приводятся к диапазонам.
type Options struct {
	Volumes   map[string]float64
	Intervals map[string]float64
	Muted     bool
}

// Mixer управляет воспроизведением звуков каталога: запуск и остановка,
// громкость, паузы между вариантами и общее приглушение.
// Один экземпляр живет все время сессии приложения.
type Mixer struct {
	mutex   sync.Mutex
	sounds  []catalog.Sound
	device  audio.Device
	locator *assets.Locator

	playing   map[string]bool
	volumes   map[string]float64
	intervals map[string]float64
	muted     bool

	players     map[string]audio.Handle
	timers      map[string]*time.Timer
	lastVariant map[string]int

	rng       *rand.Rand
	listeners []func(Snapshot)
}

// New создает микшер для указанного каталога звуков.
// Громкости и паузы из opts приводятся к допустимым диапазонам,
// отсутствующие значения получают умолчания.
func New(sounds []catalog.Sound, device audio.Device, locator *assets.Locator, opts Options) *Mixer {
	m := &Mixer{
		sounds:      sounds,
		device:      device,
		locator:     locator,
		playing:     make(map[string]bool),
		volumes:     make(map[string]float64),
		intervals:   make(map[string]float64),
		muted:       opts.Muted,
		players:     make(map[string]audio.Handle),
		timers:      make(map[string]*time.Timer),
		lastVariant: make(map[string]int),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, s := range sounds {
		// Громкость: из настроек с приведением к [0, 1], иначе 1.0
		volume := 1.0
		if v, ok := opts.Volumes[s.ID]; ok {
			volume = clampUnit(v)
		}
		m.volumes[s.ID] = volume

		// Пауза: только для звуков с конфигурацией, с приведением к диапазону
		if s.HasInterval() {
			interval := s.Mode.Interval.Default
			if v, ok := opts.Intervals[s.ID]; ok {
				interval = s.Mode.Interval.Clamp(v)
			}
			m.intervals[s.ID] = interval
		}
	}

	return m
}

// Sounds возвращает каталог микшера
func (m *Mixer) Sounds() []catalog.Sound {
	return m.sounds
}

// OnChange регистрирует слушателя изменений состояния.
// Слушатель вызывается после завершения операции, вне блокировки микшера.
func (m *Mixer) OnChange(fn func(Snapshot)) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.listeners = append(m.listeners, fn)
}

// IsPlaying возвращает true, если звук сейчас активен
func (m *Mixer) IsPlaying(sound catalog.Sound) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.playing[sound.ID]
}

// Volume возвращает громкость ползунка звука
func (m *Mixer) Volume(sound catalog.Sound) float64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if v, ok := m.volumes[sound.ID]; ok {
		return v
	}
	return 1.0
}

// Interval возвращает паузу между вариантами звука в секундах
func (m *Mixer) Interval(sound catalog.Sound) float64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.intervalLocked(sound)
}

// Muted возвращает состояние общего приглушения
func (m *Mixer) Muted() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.muted
}

// Snapshot возвращает копию наблюдаемого состояния микшера
func (m *Mixer) Snapshot() Snapshot {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.snapshotLocked()
}

// Toggle запускает остановленный звук или останавливает запущенный
func (m *Mixer) Toggle(sound catalog.Sound) {
	m.mutex.Lock()
	var changed bool
	if m.playing[sound.ID] {
		changed = m.stopLocked(sound.ID)
	} else {
		changed = m.playLocked(sound)
	}
	m.mutex.Unlock()

	if changed {
		m.emitChange()
	}
}

// Play запускает звук. Неудача запуска (отсутствующий файл, отказ
// устройства) поглощается: звук просто не помечается играющим.
func (m *Mixer) Play(sound catalog.Sound) {
	m.mutex.Lock()
	changed := m.playLocked(sound)
	m.mutex.Unlock()

	if changed {
		m.emitChange()
	}
}

// Stop останавливает звук. Остановка уже остановленного звука - no-op.
func (m *Mixer) Stop(sound catalog.Sound) {
	m.mutex.Lock()
	changed := m.stopLocked(sound.ID)
	m.mutex.Unlock()

	if changed {
		m.emitChange()
	}
}

// StopAll останавливает все звуки, используется при завершении приложения
func (m *Mixer) StopAll() {
	m.mutex.Lock()
	var changed bool
	for _, s := range m.sounds {
		if m.stopLocked(s.ID) {
			changed = true
		}
	}
	m.mutex.Unlock()

	if changed {
		m.emitChange()
	}
}

// SetVolume сохраняет громкость ползунка с приведением к [0, 1]
// и сразу применяет её к запущенному звуку без перезапуска.
func (m *Mixer) SetVolume(value float64, sound catalog.Sound) {
	m.mutex.Lock()
	m.volumes[sound.ID] = clampUnit(value)
	if h, ok := m.players[sound.ID]; ok {
		h.SetVolume(m.effectiveLocked(sound.ID))
	}
	m.mutex.Unlock()

	m.emitChange()
}

// SetInterval сохраняет паузу между вариантами с приведением к диапазону звука.
// Для звуков без конфигурации паузы - no-op. Если звук играет, ожидающий
// таймер перевзводится на новую паузу от текущего момента.
func (m *Mixer) SetInterval(seconds float64, sound catalog.Sound) {
	if !sound.HasInterval() {
		return
	}

	m.mutex.Lock()
	m.intervals[sound.ID] = sound.Mode.Interval.Clamp(seconds)
	if m.playing[sound.ID] {
		m.armTimerLocked(sound)
	}
	m.mutex.Unlock()

	m.emitChange()
}

// ToggleMute переключает общее приглушение
func (m *Mixer) ToggleMute() {
	m.SetMuted(!m.Muted())
}

// SetMuted устанавливает общее приглушение и применяет эффективную
// громкость ко всем запущенным звукам. Громкости ползунков не меняются.
func (m *Mixer) SetMuted(muted bool) {
	m.mutex.Lock()
	if m.muted == muted {
		m.mutex.Unlock()
		return
	}
	m.muted = muted
	for id, h := range m.players {
		h.SetVolume(m.effectiveLocked(id))
	}
	m.mutex.Unlock()

	m.emitChange()
}

// playLocked запускает звук в зависимости от режима воспроизведения
func (m *Mixer) playLocked(sound catalog.Sound) bool {
	switch sound.Mode.Kind {
	case catalog.KindLoop:
		return m.playLoopLocked(sound)
	case catalog.KindIntervalRandom:
		return m.playIntervalLocked(sound)
	}
	return false
}

// playLoopLocked запускает зацикленный звук.
// Существующий плеер переиспользуется, второй не создается.
func (m *Mixer) playLoopLocked(sound catalog.Sound) bool {
	h, ok := m.players[sound.ID]
	if !ok {
		path, err := m.locator.Find(sound.Mode.FileRef, sound.FileExt)
		if err != nil {
			return false
		}
		h, err = m.device.Looping(path)
		if err != nil {
			return false
		}
		m.players[sound.ID] = h
	}

	h.SetVolume(m.effectiveLocked(sound.ID))
	_ = h.Rewind()
	h.Start()
	m.playing[sound.ID] = true
	return true
}

// playIntervalLocked запускает звук со случайными вариантами:
// немедленно проигрывается один вариант и взводится таймер следующего цикла
func (m *Mixer) playIntervalLocked(sound catalog.Sound) bool {
	if !m.startVariantLocked(sound) {
		// Неудачный запуск не помечает звук играющим,
		// остаточное состояние подчищается
		m.stopLocked(sound.ID)
		return false
	}

	m.playing[sound.ID] = true
	m.armTimerLocked(sound)
	return true
}

// stopLocked останавливает звук: гасит таймер, освобождает плеер,
// сбрасывает последний вариант. Возвращает true, если что-то изменилось.
func (m *Mixer) stopLocked(id string) bool {
	var changed bool

	if t, ok := m.timers[id]; ok {
		t.Stop()
		delete(m.timers, id)
		changed = true
	}
	if h, ok := m.players[id]; ok {
		h.Stop()
		delete(m.players, id)
		changed = true
	}
	if _, ok := m.lastVariant[id]; ok {
		delete(m.lastVariant, id)
		changed = true
	}
	if m.playing[id] {
		delete(m.playing, id)
		changed = true
	}

	return changed
}

// startVariantLocked выбирает и запускает один случайный вариант звука.
// Предыдущий звучащий вариант освобождается. При двух и более вариантах
// только что сыгранный индекс исключается из выбора.
func (m *Mixer) startVariantLocked(sound catalog.Sound) bool {
	if h, ok := m.players[sound.ID]; ok {
		h.Stop()
		delete(m.players, sound.ID)
	}

	refs := sound.Mode.FileRefs
	if len(refs) == 0 {
		return false
	}

	var index int
	if len(refs) == 1 {
		index = 0
	} else if last, ok := m.lastVariant[sound.ID]; ok {
		// Равномерный выбор из всех индексов, кроме последнего сыгранного
		index = m.rng.Intn(len(refs) - 1)
		if index >= last {
			index++
		}
	} else {
		index = m.rng.Intn(len(refs))
	}
	m.lastVariant[sound.ID] = index

	path, err := m.locator.Find(refs[index], sound.FileExt)
	if err != nil {
		return false
	}

	h, err := m.device.OneShot(path)
	if err != nil {
		return false
	}

	h.SetVolume(m.effectiveLocked(sound.ID))
	_ = h.Rewind()
	h.Start()
	m.players[sound.ID] = h
	return true
}

// armTimerLocked взводит одноразовый таймер следующего цикла звука.
// Прежний таймер гасится, чтобы не раздваивать цепочку циклов.
func (m *Mixer) armTimerLocked(sound catalog.Sound) {
	if t, ok := m.timers[sound.ID]; ok {
		t.Stop()
	}
	seconds := m.intervalLocked(sound)
	m.timers[sound.ID] = time.AfterFunc(secondsToDuration(seconds), func() {
		m.onTimer(sound)
	})
}

// onTimer обрабатывает срабатывание таймера цикла.
// Таймер звука, остановленного между взводом и срабатыванием,
// считается устаревшим и молча отбрасывается.
func (m *Mixer) onTimer(sound catalog.Sound) {
	m.mutex.Lock()

	if !m.playing[sound.ID] {
		m.mutex.Unlock()
		return
	}

	if m.startVariantLocked(sound) {
		m.armTimerLocked(sound)
		m.mutex.Unlock()
		return
	}

	// Вариант не запустился - цепочка таймеров заканчивается,
	// звук останавливается целиком
	m.stopLocked(sound.ID)
	m.mutex.Unlock()

	m.emitChange()
}

// intervalLocked возвращает паузу звука: сохраненное значение,
// иначе умолчание из конфигурации, иначе общий запасной вариант
func (m *Mixer) intervalLocked(sound catalog.Sound) float64 {
	if v, ok := m.intervals[sound.ID]; ok {
		return v
	}
	if sound.HasInterval() {
		return sound.Mode.Interval.Default
	}
	return catalog.FallbackIntervalSeconds
}

// effectiveLocked возвращает эффективную громкость звука:
// 0 при общем приглушении, иначе громкость ползунка
func (m *Mixer) effectiveLocked(id string) float64 {
	if m.muted {
		return 0
	}
	return m.volumes[id]
}

// snapshotLocked собирает копию наблюдаемого состояния
func (m *Mixer) snapshotLocked() Snapshot {
	snap := Snapshot{
		Playing:   make([]string, 0, len(m.playing)),
		Volumes:   make(map[string]float64, len(m.volumes)),
		Intervals: make(map[string]float64, len(m.intervals)),
		Muted:     m.muted,
	}
	// Порядок каталога сохраняется для стабильного отображения
	for _, s := range m.sounds {
		if m.playing[s.ID] {
			snap.Playing = append(snap.Playing, s.ID)
		}
	}
	for id, v := range m.volumes {
		snap.Volumes[id] = v
	}
	for id, v := range m.intervals {
		snap.Intervals[id] = v
	}
	return snap
}

// emitChange рассылает снимок состояния слушателям вне блокировки
func (m *Mixer) emitChange() {
	m.mutex.Lock()
	snap := m.snapshotLocked()
	listeners := make([]func(Snapshot), len(m.listeners))
	copy(listeners, m.listeners)
	m.mutex.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// clampUnit приводит громкость к диапазону [0, 1]
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// secondsToDuration переводит секунды с дробной частью в time.Duration
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
