package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FormatRubles форматирует сумму в рублях с разделением разрядов: 1500 -> "1 500 ₽", 180.5 -> "180.50 ₽".
func FormatRubles(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	text := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(text, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if fracPart != "00" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	b.WriteString(" ₽")

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// FormatYesNo отображает флаг как "Да"/"Нет".
func FormatYesNo(v bool) string {
	if v {
		return "Да"
	}
	return "Нет"
}

// GenerateUUID генерирует новый UUID.
func GenerateUUID() string {
	return uuid.New().String()
}
