package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"marketing/internal/models"
	"marketing/internal/utils"
)

// AddCampaign добавляет запись о рекламной кампании.
// Записи по одному каналу не суммируются: таблица хранит временной ряд.
func (s *Store) AddCampaign(ctx context.Context, a models.NewAdStat) (int64, error) {
	var id int64
	err := s.sqlDB.QueryRowContext(ctx, `
        INSERT INTO ad_stats (channel, spend, revenue, date)
        VALUES ($1, $2, $3, $4)
        RETURNING id`,
		a.Channel, a.Spend, a.Revenue, a.Date,
	).Scan(&id)
	if err != nil {
		log.Printf("AddCampaign: ошибка добавления кампании '%s': %v", a.Channel, err)
		return 0, fmt.Errorf("ошибка добавления кампании: %w", err)
	}
	return id, nil
}

// ListCampaigns возвращает кампании от новых к старым с эффективностью (затраты/доход) по каждой строке.
func (s *Store) ListCampaigns(ctx context.Context) ([]models.AdStat, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
        SELECT id, channel, spend, revenue, date
        FROM ad_stats
        ORDER BY date DESC, id ASC`)
	if err != nil {
		log.Printf("ListCampaigns: ошибка запроса кампаний: %v", err)
		return nil, fmt.Errorf("ошибка получения списка кампаний: %w", err)
	}
	defer rows.Close()

	stats := []models.AdStat{}
	for rows.Next() {
		var a models.AdStat
		var channel, date sql.NullString
		var spend, revenue sql.NullFloat64
		if err := rows.Scan(&a.ID, &channel, &spend, &revenue, &date); err != nil {
			return nil, fmt.Errorf("ошибка чтения кампании: %w", err)
		}
		a.Channel = channel.String
		a.Spend = spend.Float64
		a.Revenue = revenue.Float64
		a.Date = date.String
		a.Efficiency = utils.Efficiency(a.Spend, a.Revenue)
		stats = append(stats, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по кампаниям: %w", err)
	}
	return stats, nil
}

// AccumulateRevenue зачисляет доход от выполненной заявки на последнюю по дате запись канала.
// Если записей по каналу нет, создается новая с нулевыми затратами и сегодняшней датой.
// От одновременных сессий не защищена.
func (s *Store) AccumulateRevenue(ctx context.Context, channel string, amount float64) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var id int64
		var revenue sql.NullFloat64
		err := tx.QueryRowContext(ctx, `
            SELECT id, revenue
            FROM ad_stats
            WHERE channel = $1
            ORDER BY date DESC, id DESC
            LIMIT 1`, channel,
		).Scan(&id, &revenue)
		if errors.Is(err, sql.ErrNoRows) {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO ad_stats (channel, spend, revenue, date) VALUES ($1, $2, $3, $4)`,
				channel, 0.0, amount, s.today())
			return err
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `UPDATE ad_stats SET revenue = $1 WHERE id = $2`, revenue.Float64+amount, id)
		return err
	})
	if err != nil {
		log.Printf("AccumulateRevenue: ошибка зачисления дохода %.2f на канал '%s': %v", amount, channel, err)
		return fmt.Errorf("ошибка зачисления дохода на канал: %w", err)
	}
	log.Printf("Доход %.2f зачислен на рекламный канал '%s'.", amount, channel)
	return nil
}

// ListAdChannels возвращает названия всех каналов, встречавшихся в таблице кампаний.
func (s *Store) ListAdChannels(ctx context.Context) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
        SELECT DISTINCT channel
        FROM ad_stats
        WHERE channel IS NOT NULL
        ORDER BY channel`)
	if err != nil {
		log.Printf("ListAdChannels: ошибка запроса каналов: %v", err)
		return nil, fmt.Errorf("ошибка получения списка каналов: %w", err)
	}
	defer rows.Close()

	channels := []string{}
	for rows.Next() {
		var channel string
		if err := rows.Scan(&channel); err != nil {
			return nil, fmt.Errorf("ошибка чтения канала: %w", err)
		}
		channels = append(channels, channel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по каналам: %w", err)
	}
	return channels, nil
}
