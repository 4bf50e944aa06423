// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"fmt"
)

// FormatPercent форматирует громкость [0, 1] в проценты вида "75%"
func FormatPercent(value float64) string {
	return fmt.Sprintf("%d%%", int(value*100+0.5))
}

// FormatSeconds форматирует паузу в секундах в вид "30s" или "1m30s"
func FormatSeconds(seconds float64) string {
	total := int(seconds + 0.5)
	if total < 60 {
		return fmt.Sprintf("%ds", total)
	}
	if total%60 == 0 {
		return fmt.Sprintf("%dm", total/60)
	}
	return fmt.Sprintf("%dm%ds", total/60, total%60)
}

// TruncateString обрезает строку до указанной длины, добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
