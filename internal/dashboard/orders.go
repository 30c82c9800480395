package dashboard

import (
	"context"
	"log"

	"marketing/internal/constants"
	"marketing/internal/formatters"
	"marketing/internal/models"
)

// PlaceOrder создает заявку. Клиент читается до создания заявки, и скидка
// считается по этому снимку, то есть по статусу до текущей заявки.
func (s *Service) PlaceOrder(ctx context.Context, clientID, serviceID int64) (models.Order, error) {
	snapshot, err := s.repo.GetClient(ctx, clientID)
	if err != nil {
		return models.Order{}, err
	}
	order, err := s.repo.CreateOrder(ctx, clientID, serviceID, snapshot)
	if err != nil {
		return models.Order{}, err
	}
	s.notify(ctx, formatters.FormatOrderCreated(snapshot, order))
	return order, nil
}

// ListOrders возвращает заявки для таблицы.
func (s *Service) ListOrders(ctx context.Context) ([]models.OrderView, error) {
	return s.repo.ListOrders(ctx)
}

// CompletionResult - итог выполнения заявки.
type CompletionResult struct {
	Order models.Order `json:"order"`
	// AttributedChannel - канал, на который зачислен доход; пусто, если зачисления не было.
	AttributedChannel string `json:"attributed_channel,omitempty"`
}

// CompleteOrder отмечает заявку выполненной и зачисляет ее сумму на рекламный канал клиента,
// если клиент пришел из рекламы. Канал берется из текущей записи клиента, а не на момент создания заявки.
// Уже выполненная заявка повторно доход не зачисляет.
func (s *Service) CompleteOrder(ctx context.Context, orderID int64) (CompletionResult, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return CompletionResult{}, err
	}
	result := CompletionResult{Order: order}
	if order.IsCompleted {
		return result, nil
	}

	if err := s.repo.MarkCompleted(ctx, orderID); err != nil {
		return CompletionResult{}, err
	}
	result.Order.IsCompleted = true

	client, err := s.repo.GetClientForOrder(ctx, orderID)
	if err != nil {
		return result, err
	}
	if client.Source == constants.SOURCE_ADVERTISING && client.AdChannel != constants.NOT_SPECIFIED {
		if err := s.repo.AccumulateRevenue(ctx, client.AdChannel, order.FinalPrice); err != nil {
			return result, err
		}
		result.AttributedChannel = client.AdChannel
	}

	log.Printf("Заявка #%d выполнена (канал: %q).", orderID, result.AttributedChannel)
	s.notify(ctx, formatters.FormatOrderCompleted(client, result.Order, result.AttributedChannel))
	return result, nil
}
