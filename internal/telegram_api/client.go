package telegram_api

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
)

// BotClient - обертка над Telegram Bot API для уведомлений владельца.
// Реализует dashboard.Notifier.
type BotClient struct {
	api    *tgbotapi.BotAPI
	chatID int64
	Debug  bool
}

// NewBotClient авторизует бота и возвращает клиент, отправляющий сообщения в чат chatID.
func NewBotClient(token string, chatID int64, debug bool) (*BotClient, error) {
	if token == "" {
		return nil, fmt.Errorf("токен Telegram API не предоставлен")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации Telegram Bot API: %w", err)
	}
	return newBotClient(api, chatID, debug)
}

// newBotClientWithEndpoint нужен для подмены адреса API в тестах.
func newBotClientWithEndpoint(token, endpoint string, chatID int64) (*BotClient, error) {
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации Telegram Bot API: %w", err)
	}
	return newBotClient(api, chatID, false)
}

func newBotClient(api *tgbotapi.BotAPI, chatID int64, debug bool) (*BotClient, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("ID чата владельца не задан")
	}
	api.Debug = debug
	log.Printf("Авторизован как аккаунт %s", api.Self.UserName)
	return &BotClient{api: api, chatID: chatID, Debug: debug}, nil
}

// Notify отправляет текстовое сообщение в чат владельца.
func (bc *BotClient) Notify(ctx context.Context, text string) error {
	if bc == nil || bc.api == nil {
		return fmt.Errorf("BotClient или его API не инициализирован")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if bc.Debug {
		log.Printf("Отправка сообщения: ChatID=%d, Text='%.50s...'", bc.chatID, text)
	}
	if _, err := bc.api.Send(tgbotapi.NewMessage(bc.chatID, text)); err != nil {
		return fmt.Errorf("ошибка отправки сообщения в Telegram: %w", err)
	}
	return nil
}

// SendReport отправляет файл отчета (например, выгрузку Excel) в чат владельца.
func (bc *BotClient) SendReport(ctx context.Context, filename string, data []byte, caption string) error {
	if bc == nil || bc.api == nil {
		return fmt.Errorf("BotClient или его API не инициализирован")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := tgbotapi.NewDocument(bc.chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = caption
	if _, err := bc.api.Send(doc); err != nil {
		log.Printf("SendReport: ошибка отправки файла %s в чат %d: %v", filename, bc.chatID, err)
		return fmt.Errorf("ошибка отправки файла в Telegram: %w", err)
	}
	return nil
}
