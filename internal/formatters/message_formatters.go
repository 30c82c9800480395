package formatters

import (
	"fmt"
	"strings"

	"marketing/internal/models"
	"marketing/internal/utils"
)

const (
	separator = "─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─"
)

// FormatOrderCreated форматирует уведомление владельцу о новой заявке.
// Сообщение отправляется без разметки, поэтому экранирование не требуется.
func FormatOrderCreated(client models.Client, order models.Order) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📝 Новая заявка #%d\n", order.ID))
	b.WriteString(separator + "\n")
	b.WriteString(fmt.Sprintf(" •  Клиент: %s\n", clientLabel(client)))
	b.WriteString(fmt.Sprintf(" •  Дата: %s\n", order.Date))
	if order.DiscountApplied > 0 {
		b.WriteString(fmt.Sprintf(" •  Скидка: %.0f%% (повторный клиент)\n", order.DiscountApplied))
	}
	b.WriteString(fmt.Sprintf(" •  Сумма: %s", utils.FormatRubles(order.FinalPrice)))
	return b.String()
}

// FormatOrderCompleted форматирует уведомление о выполненной заявке.
func FormatOrderCompleted(client models.Client, order models.Order, channel string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✅ Заявка #%d выполнена\n", order.ID))
	b.WriteString(separator + "\n")
	b.WriteString(fmt.Sprintf(" •  Клиент: %s\n", clientLabel(client)))
	b.WriteString(fmt.Sprintf(" •  Сумма: %s", utils.FormatRubles(order.FinalPrice)))
	if channel != "" {
		b.WriteString(fmt.Sprintf("\n •  Доход зачислен на канал: %s", channel))
	}
	return b.String()
}

// clientLabel - "Имя (категория, регион)", как в списке выбора клиента.
func clientLabel(c models.Client) string {
	name := c.Name
	if name == "" {
		name = fmt.Sprintf("Клиент #%d", c.ID)
	}
	if c.Category == "" && c.Region == "" {
		return name
	}
	return fmt.Sprintf("%s (%s, %s)", name, c.Category, c.Region)
}
