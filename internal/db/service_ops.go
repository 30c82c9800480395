package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"marketing/internal/constants"
	"marketing/internal/models"
)

// SeedDefaultServices загружает стандартный каталог, только если таблица услуг пуста.
// Возвращает количество добавленных услуг. От одновременного запуска из двух процессов не защищена.
func (s *Store) SeedDefaultServices(ctx context.Context) (int, error) {
	inserted := 0
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, svc := range constants.DefaultServices {
			if _, err := tx.ExecContext(ctx, `INSERT INTO services (title, price) VALUES ($1, $2)`, svc.Title, svc.Price); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		log.Printf("SeedDefaultServices: ошибка загрузки стандартных услуг: %v", err)
		return 0, fmt.Errorf("ошибка загрузки стандартных услуг: %w", err)
	}
	if inserted > 0 {
		log.Printf("Загружено стандартных услуг: %d", inserted)
	}
	return inserted, nil
}

// AddService добавляет услугу в каталог. Стоимость сохраняется текстом без проверки.
func (s *Store) AddService(ctx context.Context, title, price string) (int64, error) {
	var id int64
	err := s.sqlDB.QueryRowContext(ctx,
		`INSERT INTO services (title, price) VALUES ($1, $2) RETURNING id`, title, price,
	).Scan(&id)
	if err != nil {
		log.Printf("AddService: ошибка добавления услуги '%s': %v", title, err)
		return 0, fmt.Errorf("ошибка добавления услуги: %w", err)
	}
	return id, nil
}

// ListServices возвращает каталог услуг в порядке добавления.
func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, title, price FROM services ORDER BY id`)
	if err != nil {
		log.Printf("ListServices: ошибка запроса услуг: %v", err)
		return nil, fmt.Errorf("ошибка получения каталога услуг: %w", err)
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var svc models.Service
		var title, price sql.NullString
		if err := rows.Scan(&svc.ID, &title, &price); err != nil {
			return nil, fmt.Errorf("ошибка чтения услуги: %w", err)
		}
		svc.Title = title.String
		svc.Price = price.String
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по услугам: %w", err)
	}
	return services, nil
}
