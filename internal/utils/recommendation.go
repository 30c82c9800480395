package utils

import (
	"strings"

	"marketing/internal/constants"
	"marketing/internal/models"
)

// RecommendService подбирает следующую услугу для клиента. Срабатывает первое подходящее правило.
// Категория и регион сравниваются без учета регистра и пробелов по краям.
func RecommendService(client models.Client) string {
	category := normalize(client.Category)
	region := normalize(client.Region)

	switch {
	case region == normalize(constants.REGION_MOSCOW) && category == normalize(constants.CATEGORY_INDIVIDUAL):
		return constants.RECOMMEND_WRITTEN_CONSULTATION
	case region == normalize(constants.REGION_REGIONS) && category == normalize(constants.CATEGORY_COMPANY):
		return constants.RECOMMEND_CUSTOMER_MATERIALS
	case client.IsRepeatClient:
		return constants.RECOMMEND_SUPPORT_DISCOUNT
	}
	return constants.RECOMMEND_CONTENT_FROM_SCRATCH
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
