package utils

import (
	"fmt"
	"log"
	"strings"

	"github.com/skip2/go-qrcode"
)

// GenerateReferralLink генерирует реферальную ссылку клиента.
// baseURL передается из конфигурации, ID клиента дописывается в конец.
func GenerateReferralLink(baseURL string, clientID int64) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		log.Println("GenerateReferralLink: базовый адрес реферальной ссылки не настроен.")
		return "", fmt.Errorf("базовый адрес реферальной ссылки не настроен")
	}
	if clientID <= 0 {
		log.Printf("GenerateReferralLink: невалидный ID клиента: %d", clientID)
		return "", fmt.Errorf("невалидный ID клиента для реферальной ссылки")
	}
	return fmt.Sprintf("%s%d", baseURL, clientID), nil
}

// GenerateQRCode генерирует PNG с QR-кодом реферальной ссылки.
func GenerateQRCode(baseURL string, clientID int64) ([]byte, error) {
	link, err := GenerateReferralLink(baseURL, clientID)
	if err != nil {
		return nil, err
	}

	// qrcode.Medium - уровень коррекции ошибок, 256 - размер в пикселях.
	qrBytes, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		log.Printf("GenerateQRCode: ошибка кодирования QR-кода для ссылки '%s': %v", link, err)
		return nil, err
	}
	return qrBytes, nil
}
