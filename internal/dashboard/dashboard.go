// Package dashboard связывает хранилище с действиями пользователя дашборда:
// регистрация клиентов, создание и выполнение заявок, учет рекламы и аналитика.
package dashboard

import (
	"context"
	"log"
	"time"

	"marketing/internal/models"
)

// Clients - операции с клиентами.
type Clients interface {
	AddClient(ctx context.Context, c models.NewClient) (int64, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, clientID int64) (models.Client, error)
}

// Services - операции с каталогом услуг.
type Services interface {
	AddService(ctx context.Context, title, price string) (int64, error)
	ListServices(ctx context.Context) ([]models.Service, error)
}

// Orders - операции с заявками.
type Orders interface {
	CreateOrder(ctx context.Context, clientID, serviceID int64, snapshot models.Client) (models.Order, error)
	GetOrder(ctx context.Context, orderID int64) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.OrderView, error)
	MarkCompleted(ctx context.Context, orderID int64) error
	GetClientForOrder(ctx context.Context, orderID int64) (models.Client, error)
}

// AdStats - операции со статистикой рекламы.
type AdStats interface {
	AddCampaign(ctx context.Context, a models.NewAdStat) (int64, error)
	ListCampaigns(ctx context.Context) ([]models.AdStat, error)
	AccumulateRevenue(ctx context.Context, channel string, amount float64) error
	ListAdChannels(ctx context.Context) ([]string, error)
}

// Stats - агрегированные показатели.
type Stats interface {
	GetSummary(ctx context.Context) (models.Summary, error)
}

// Repository объединяет все операции хранилища; его реализует *db.Store.
type Repository interface {
	Clients
	Services
	Orders
	AdStats
	Stats
}

// Notifier отправляет уведомление владельцу. Ошибки уведомлений не прерывают операции.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// NopNotifier ничего не отправляет.
type NopNotifier struct{}

// Notify реализует Notifier.
func (NopNotifier) Notify(context.Context, string) error { return nil }

// Service выполняет действия пользователя дашборда.
type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithNotifier задает получателя уведомлений о заявках.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New создает Service поверх хранилища.
func New(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, notifier: NopNotifier{}, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) notify(ctx context.Context, text string) {
	if err := s.notifier.Notify(ctx, text); err != nil {
		log.Printf("dashboard: ошибка отправки уведомления: %v", err)
	}
}
