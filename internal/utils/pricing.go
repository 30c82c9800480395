package utils

import (
	"math"
	"strconv"
	"strings"

	"marketing/internal/constants"
	"marketing/internal/models"
)

// ParsePrice переводит текстовую стоимость услуги в число.
// Нечисловые значения ("по договоренности", пустая строка) дают 0, это не ошибка.
func ParsePrice(priceText string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(priceText), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return price
}

// DiscountFor возвращает скидку в процентах по снимку клиента, прочитанному до создания заявки.
// Скидка отражает статус клиента строго до текущей заявки.
func DiscountFor(snapshot models.Client) float64 {
	if snapshot.IsRepeatClient {
		return constants.REPEAT_CLIENT_DISCOUNT
	}
	return 0
}

// FinalPrice считает итоговую сумму заявки с учетом скидки.
func FinalPrice(price, discount float64) float64 {
	return price * (1 - discount/100)
}

// Efficiency - отношение затрат к доходу. При нулевом доходе результат бесконечен
// (или NaN при нулевых затратах), паники нет.
func Efficiency(spend, revenue float64) models.Ratio {
	return models.Ratio(spend / revenue)
}
