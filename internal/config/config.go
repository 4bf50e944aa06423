// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	SoundsDir    string `yaml:"sounds_dir"`    // Каталог с аудиофайлами
	SettingsFile string `yaml:"settings_file"` // Файл сохраненных настроек звуков
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не ошибка: приложение должно работать без настройки,
// в этом случае используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.SoundsDir == "" {
		config.SoundsDir = "~/.ambient/sounds"
	}
	if config.SettingsFile == "" {
		config.SettingsFile = "~/.ambient/settings.yaml"
	}

	// Раскрываем тильду в путях
	config.SoundsDir = strings.Replace(config.SoundsDir, "~", home, 1)
	config.SettingsFile = strings.Replace(config.SettingsFile, "~", home, 1)

	return config, nil
}
