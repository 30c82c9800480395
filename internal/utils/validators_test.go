package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing/internal/constants"
	"marketing/internal/models"
)

func TestValidateClientInput(t *testing.T) {
	t.Run("trims and fills defaults", func(t *testing.T) {
		got, err := ValidateClientInput(models.NewClient{Name: "  Иван ", Email: " ivan@example.com "})
		require.NoError(t, err)
		assert.Equal(t, "Иван", got.Name)
		assert.Equal(t, "ivan@example.com", got.Email)
		assert.Equal(t, constants.SOURCE_NONE, got.Source)
		assert.Equal(t, constants.NOT_SPECIFIED, got.AdChannel)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := ValidateClientInput(models.NewClient{Name: "   ", Email: "a@b.c"})
		assert.ErrorIs(t, err, ErrEmptyField)
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := ValidateClientInput(models.NewClient{Name: "ООО Ромашка"})
		assert.ErrorIs(t, err, ErrEmptyField)
	})

	t.Run("ad channel kept only for advertising", func(t *testing.T) {
		got, err := ValidateClientInput(models.NewClient{Name: "A", Email: "a@b.c", Source: constants.SOURCE_ADVERTISING, AdChannel: " VK "})
		require.NoError(t, err)
		assert.Equal(t, "VK", got.AdChannel)

		got, err = ValidateClientInput(models.NewClient{Name: "A", Email: "a@b.c", Source: constants.SOURCE_WEBSITE, AdChannel: "VK"})
		require.NoError(t, err)
		assert.Equal(t, constants.NOT_SPECIFIED, got.AdChannel)
	})
}

func TestValidateDate(t *testing.T) {
	today := time.Date(2026, 10, 14, 15, 0, 0, 0, time.UTC)

	got, err := ValidateDate("", today)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-14", got)

	got, err = ValidateDate(" 2025-01-31 ", today)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", got)

	_, err = ValidateDate("31.01.2025", today)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestValidateCampaignInput(t *testing.T) {
	today := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	_, err := ValidateCampaignInput(models.NewAdStat{Channel: " "}, today)
	assert.ErrorIs(t, err, ErrEmptyField)

	got, err := ValidateCampaignInput(models.NewAdStat{Channel: " Директ ", Spend: 100, Revenue: 50}, today)
	require.NoError(t, err)
	assert.Equal(t, "Директ", got.Channel)
	assert.Equal(t, "2026-10-14", got.Date)
}
