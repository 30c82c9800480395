package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketing/internal/constants"
	"marketing/internal/models"
)

// ErrEmptyField возвращается, когда обязательное поле формы не заполнено.
var ErrEmptyField = errors.New("обязательное поле не заполнено")

// ErrInvalidDate возвращается, когда дата не в формате ГГГГ-ММ-ДД.
var ErrInvalidDate = errors.New("некорректный формат даты")

// ValidateClientInput проверяет форму регистрации клиента и заполняет значения по умолчанию.
// Проверяется только наличие имени и email; остальные поля принимаются как есть.
func ValidateClientInput(in models.NewClient) (models.NewClient, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return in, fmt.Errorf("%w: 'Клиент'", ErrEmptyField)
	}
	if in.Email == "" {
		return in, fmt.Errorf("%w: 'Email'", ErrEmptyField)
	}

	if strings.TrimSpace(in.Source) == "" {
		in.Source = constants.SOURCE_NONE
	}
	// Канал рекламы имеет смысл только для клиентов, пришедших из рекламы.
	if in.Source != constants.SOURCE_ADVERTISING || strings.TrimSpace(in.AdChannel) == "" {
		in.AdChannel = constants.NOT_SPECIFIED
	} else {
		in.AdChannel = strings.TrimSpace(in.AdChannel)
	}
	return in, nil
}

// ValidateCampaignInput проверяет форму добавления кампании.
// Пустая дата заменяется на today; остальные даты должны быть в формате ГГГГ-ММ-ДД.
func ValidateCampaignInput(in models.NewAdStat, today time.Time) (models.NewAdStat, error) {
	in.Channel = strings.TrimSpace(in.Channel)
	if in.Channel == "" {
		return in, fmt.Errorf("%w: 'Канал рекламы'", ErrEmptyField)
	}
	date, err := ValidateDate(in.Date, today)
	if err != nil {
		return in, err
	}
	in.Date = date
	return in, nil
}

// ValidateDate проверяет строку с датой и возвращает ее в формате ГГГГ-ММ-ДД.
func ValidateDate(dateStr string, today time.Time) (string, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return today.Format(constants.DateLayout), nil
	}
	parsed, err := time.Parse(constants.DateLayout, dateStr)
	if err != nil {
		return "", fmt.Errorf("%w '%s', ожидается ГГГГ-ММ-ДД: %v", ErrInvalidDate, dateStr, err)
	}
	return parsed.Format(constants.DateLayout), nil
}
