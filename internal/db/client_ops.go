package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"marketing/internal/models"
)

const clientColumns = `id, name, email, category, region, is_repeat_client, source, is_referral, ad_channel`

// AddClient добавляет клиента. Проверка полей - забота вызывающего кода, здесь принимается любой текст.
func (s *Store) AddClient(ctx context.Context, c models.NewClient) (int64, error) {
	var id int64
	err := s.sqlDB.QueryRowContext(ctx, `
        INSERT INTO clients (name, email, category, region, source, is_referral, ad_channel)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id`,
		c.Name, c.Email, c.Category, c.Region, c.Source, c.IsReferral, c.AdChannel,
	).Scan(&id)
	if err != nil {
		log.Printf("AddClient: ошибка добавления клиента '%s': %v", c.Name, err)
		return 0, fmt.Errorf("ошибка добавления клиента: %w", err)
	}
	return id, nil
}

// ListClients возвращает всех клиентов в порядке добавления.
func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		log.Printf("ListClients: ошибка запроса клиентов: %v", err)
		return nil, fmt.Errorf("ошибка получения списка клиентов: %w", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения клиента: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по клиентам: %w", err)
	}
	return clients, nil
}

// GetClient возвращает клиента по ID.
func (s *Store) GetClient(ctx context.Context, clientID int64) (models.Client, error) {
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, clientID)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, fmt.Errorf("клиент #%d: %w", clientID, ErrNotFound)
		}
		log.Printf("GetClient: ошибка получения клиента #%d: %v", clientID, err)
		return models.Client{}, fmt.Errorf("ошибка получения клиента: %w", err)
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanClient читает строку в порядке clientColumns. NULL в текстовых полях читается как пустая строка.
func scanClient(r rowScanner) (models.Client, error) {
	var c models.Client
	var name, email, category, region, source, adChannel sql.NullString
	var isRepeat, isReferral sql.NullBool
	if err := r.Scan(&c.ID, &name, &email, &category, &region, &isRepeat, &source, &isReferral, &adChannel); err != nil {
		return c, err
	}
	c.Name = name.String
	c.Email = email.String
	c.Category = category.String
	c.Region = region.String
	c.IsRepeatClient = isRepeat.Bool
	c.Source = source.String
	c.IsReferral = isReferral.Bool
	c.AdChannel = adChannel.String
	return c, nil
}
