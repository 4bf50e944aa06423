// Package mixerlist содержит модель экрана микшера для TUI
package mixerlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-ambient/internal/catalog"
	"github.com/hazadus/go-ambient/internal/mixer"
	"github.com/hazadus/go-ambient/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	playingMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).PaddingLeft(4)
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// Шаги изменения громкости и паузы с клавиатуры
const (
	volumeStep   = 0.05
	intervalStep = 5.0
)

// soundItem реализует интерфейс list.Item для звука каталога
type soundItem struct {
	sound catalog.Sound
	mixer *mixer.Mixer
}

func (i soundItem) FilterValue() string {
	return i.sound.Name
}

// soundItemDelegate реализует отображение элементов списка
type soundItemDelegate struct {
	bar progress.Model
}

func newSoundItemDelegate() soundItemDelegate {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 20
	return soundItemDelegate{bar: bar}
}

func (d soundItemDelegate) Height() int                             { return 1 }
func (d soundItemDelegate) Spacing() int                            { return 0 }
func (d soundItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d soundItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(soundItem)
	if !ok {
		return
	}
	s := i.sound

	// Маркер воспроизведения, название, полоса громкости, проценты
	mark := " "
	if i.mixer.IsPlaying(s) {
		mark = playingMarkStyle.Render("▶")
	}
	volume := i.mixer.Volume(s)
	str := fmt.Sprintf("%s %s %-12s %s %4s",
		mark,
		s.Icon,
		utils.TruncateString(s.Name, 12),
		d.bar.ViewAs(volume),
		utils.FormatPercent(volume))

	// Для звуков со случайными вариантами показываем паузу
	if s.HasInterval() {
		str += fmt.Sprintf("  каждые %s", utils.FormatSeconds(i.mixer.Interval(s)))
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана микшера
type Model struct {
	list     list.Model
	mixer    *mixer.Mixer
	quitting bool
}

// NewModel создает новую модель микшера
func NewModel(m *mixer.Mixer) *Model {
	sounds := m.Sounds()

	// Преобразуем звуки каталога в элементы списка
	items := make([]list.Item, len(sounds))
	for i, s := range sounds {
		items[i] = soundItem{sound: s, mixer: m}
	}

	// Создаем список
	l := list.New(items, newSoundItemDelegate(), 0, 0)
	l.Title = "Эмбиент"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:  l,
		mixer: m,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// selectedSound возвращает звук, выбранный в списке
func (m *Model) selectedSound() (catalog.Sound, bool) {
	selectedItem := m.list.SelectedItem()
	if selectedItem == nil {
		return catalog.Sound{}, false
	}
	item, ok := selectedItem.(soundItem)
	if !ok {
		return catalog.Sound{}, false
	}
	return item.sound, true
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для заголовка и справки
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter", " ":
			// Запуск или остановка выбранного звука
			if sound, ok := m.selectedSound(); ok {
				m.mixer.Toggle(sound)
			}
			return m, nil

		case "+", "=":
			if sound, ok := m.selectedSound(); ok {
				m.mixer.SetVolume(m.mixer.Volume(sound)+volumeStep, sound)
			}
			return m, nil

		case "-", "_":
			if sound, ok := m.selectedSound(); ok {
				m.mixer.SetVolume(m.mixer.Volume(sound)-volumeStep, sound)
			}
			return m, nil

		case "]":
			if sound, ok := m.selectedSound(); ok && sound.HasInterval() {
				m.mixer.SetInterval(m.mixer.Interval(sound)+intervalStep, sound)
			}
			return m, nil

		case "[":
			if sound, ok := m.selectedSound(); ok && sound.HasInterval() {
				m.mixer.SetInterval(m.mixer.Interval(sound)-intervalStep, sound)
			}
			return m, nil

		case "m":
			m.mixer.ToggleMute()
			return m, nil
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	view := m.list.View()

	// Индикатор общего приглушения
	if m.mixer.Muted() {
		view += "\n" + mutedStyle.Render("🔇 Приглушено")
	}

	// Добавляем дополнительную справку
	extraHelp := helpStyle.Render("Enter: вкл/выкл • +/-: громкость • [/]: пауза • m: приглушить • q: выход")
	return view + "\n" + extraHelp
}
