package db

import (
	"context"
	"fmt"
	"log"

	"marketing/internal/constants"
	"marketing/internal/models"
)

// GetSummary считает показатели для вкладки аналитики: количество клиентов и заявок,
// клиентов по регионам, повторных клиентов и распределение по источникам привлечения.
func (s *Store) GetSummary(ctx context.Context) (models.Summary, error) {
	summary := models.Summary{Sources: map[string]int{}}

	err := s.sqlDB.QueryRowContext(ctx, `
        SELECT COUNT(*),
               COALESCE(SUM(CASE WHEN region = $1 THEN 1 ELSE 0 END), 0),
               COALESCE(SUM(CASE WHEN region = $2 THEN 1 ELSE 0 END), 0),
               COALESCE(SUM(CASE WHEN is_repeat_client THEN 1 ELSE 0 END), 0)
        FROM clients`, constants.REGION_MOSCOW, constants.REGION_REGIONS,
	).Scan(&summary.TotalClients, &summary.MoscowClients, &summary.RegionClients, &summary.RepeatClients)
	if err != nil {
		log.Printf("GetSummary: ошибка подсчета клиентов: %v", err)
		return summary, fmt.Errorf("ошибка подсчета клиентов: %w", err)
	}

	// Считаются те же строки, что и в списке заявок.
	err = s.sqlDB.QueryRowContext(ctx, `
        SELECT COUNT(*)
        FROM orders o
        JOIN clients c ON o.client_id = c.id
        JOIN services s ON o.service_id = s.id`,
	).Scan(&summary.TotalOrders)
	if err != nil {
		log.Printf("GetSummary: ошибка подсчета заявок: %v", err)
		return summary, fmt.Errorf("ошибка подсчета заявок: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
        SELECT COALESCE(source, ''), COUNT(*)
        FROM clients
        GROUP BY COALESCE(source, '')`)
	if err != nil {
		log.Printf("GetSummary: ошибка группировки по источникам: %v", err)
		return summary, fmt.Errorf("ошибка группировки по источникам: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return summary, fmt.Errorf("ошибка чтения источника: %w", err)
		}
		summary.Sources[source] = count
	}
	if err := rows.Err(); err != nil {
		return summary, fmt.Errorf("ошибка итерации по источникам: %w", err)
	}
	return summary, nil
}
