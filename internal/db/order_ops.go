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

// CreateOrder создает заявку клиента на услугу.
// Скидка берется из snapshot - снимка клиента, прочитанного вызывающим кодом до этой заявки,
// а не из свежего запроса: скидка отражает статус клиента строго до текущей заявки.
// Итоговая сумма считается один раз и дальше не пересчитывается.
// После вставки клиент всегда помечается как повторный.
func (s *Store) CreateOrder(ctx context.Context, clientID, serviceID int64, snapshot models.Client) (models.Order, error) {
	order := models.Order{
		ClientID:  clientID,
		ServiceID: serviceID,
		Date:      s.today(),
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var priceText sql.NullString
		err := tx.QueryRowContext(ctx, `SELECT price FROM services WHERE id = $1`, serviceID).Scan(&priceText)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("услуга #%d: %w", serviceID, ErrNotFound)
			}
			return err
		}

		price := utils.ParsePrice(priceText.String)
		order.DiscountApplied = utils.DiscountFor(snapshot)
		order.FinalPrice = utils.FinalPrice(price, order.DiscountApplied)

		err = tx.QueryRowContext(ctx, `
            INSERT INTO orders (client_id, service_id, date, discount_applied, final_price, is_completed)
            VALUES ($1, $2, $3, $4, $5, $6)
            RETURNING id`,
			clientID, serviceID, order.Date, order.DiscountApplied, order.FinalPrice, false,
		).Scan(&order.ID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `UPDATE clients SET is_repeat_client = $1 WHERE id = $2`, true, clientID)
		return err
	})
	if err != nil {
		log.Printf("CreateOrder: ошибка создания заявки (клиент #%d, услуга #%d): %v", clientID, serviceID, err)
		return models.Order{}, fmt.Errorf("ошибка создания заявки: %w", err)
	}

	log.Printf("Заявка #%d создана: клиент #%d, услуга #%d, скидка %.0f%%, сумма %.2f",
		order.ID, clientID, serviceID, order.DiscountApplied, order.FinalPrice)
	return order, nil
}

// GetOrder возвращает заявку по ID.
func (s *Store) GetOrder(ctx context.Context, orderID int64) (models.Order, error) {
	var o models.Order
	var date sql.NullString
	var discount, finalPrice sql.NullFloat64
	var completed sql.NullBool
	err := s.sqlDB.QueryRowContext(ctx, `
        SELECT id, client_id, service_id, date, discount_applied, final_price, is_completed
        FROM orders
        WHERE id = $1`, orderID,
	).Scan(&o.ID, &o.ClientID, &o.ServiceID, &date, &discount, &finalPrice, &completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, fmt.Errorf("заявка #%d: %w", orderID, ErrNotFound)
		}
		log.Printf("GetOrder: ошибка получения заявки #%d: %v", orderID, err)
		return models.Order{}, fmt.Errorf("ошибка получения заявки: %w", err)
	}
	o.Date = date.String
	o.DiscountApplied = discount.Float64
	o.FinalPrice = finalPrice.Float64
	o.IsCompleted = completed.Bool
	return o, nil
}

// ListOrders возвращает заявки с именем клиента и названием услуги.
// Сортировка: по дате от новых к старым, внутри одной даты - в порядке добавления.
func (s *Store) ListOrders(ctx context.Context) ([]models.OrderView, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
        SELECT o.id, o.client_id, o.service_id, c.name, s.title, o.date,
               o.discount_applied, o.final_price, o.is_completed
        FROM orders o
        JOIN clients c ON o.client_id = c.id
        JOIN services s ON o.service_id = s.id
        ORDER BY o.date DESC, o.id ASC`)
	if err != nil {
		log.Printf("ListOrders: ошибка запроса заявок: %v", err)
		return nil, fmt.Errorf("ошибка получения списка заявок: %w", err)
	}
	defer rows.Close()

	orders := []models.OrderView{}
	for rows.Next() {
		var v models.OrderView
		var clientName, serviceTitle, date sql.NullString
		var discount, finalPrice sql.NullFloat64
		var completed sql.NullBool
		if err := rows.Scan(&v.ID, &v.ClientID, &v.ServiceID, &clientName, &serviceTitle, &date,
			&discount, &finalPrice, &completed); err != nil {
			return nil, fmt.Errorf("ошибка чтения заявки: %w", err)
		}
		v.ClientName = clientName.String
		v.ServiceTitle = serviceTitle.String
		v.Date = date.String
		v.DiscountApplied = discount.Float64
		v.FinalPrice = finalPrice.Float64
		v.IsCompleted = completed.Bool
		orders = append(orders, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по заявкам: %w", err)
	}
	return orders, nil
}

// MarkCompleted отмечает заявку выполненной. Несуществующий ID не считается ошибкой.
func (s *Store) MarkCompleted(ctx context.Context, orderID int64) error {
	_, err := s.sqlDB.ExecContext(ctx, `UPDATE orders SET is_completed = $1 WHERE id = $2`, true, orderID)
	if err != nil {
		log.Printf("MarkCompleted: ошибка обновления заявки #%d: %v", orderID, err)
		return fmt.Errorf("ошибка отметки заявки выполненной: %w", err)
	}
	return nil
}

// GetClientForOrder возвращает клиента, которому принадлежит заявка.
func (s *Store) GetClientForOrder(ctx context.Context, orderID int64) (models.Client, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
        SELECT cl.id, cl.name, cl.email, cl.category, cl.region, cl.is_repeat_client,
               cl.source, cl.is_referral, cl.ad_channel
        FROM orders o
        JOIN clients cl ON o.client_id = cl.id
        WHERE o.id = $1`, orderID)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, fmt.Errorf("клиент заявки #%d: %w", orderID, ErrNotFound)
		}
		log.Printf("GetClientForOrder: ошибка получения клиента заявки #%d: %v", orderID, err)
		return models.Client{}, fmt.Errorf("ошибка получения клиента заявки: %w", err)
	}
	return c, nil
}
