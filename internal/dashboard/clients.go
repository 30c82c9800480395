package dashboard

import (
	"context"
	"fmt"
	"strings"

	"marketing/internal/models"
	"marketing/internal/utils"
)

// RegisterClient проверяет форму и добавляет клиента. Возвращает сохраненную запись.
func (s *Service) RegisterClient(ctx context.Context, in models.NewClient) (models.Client, error) {
	in, err := utils.ValidateClientInput(in)
	if err != nil {
		return models.Client{}, err
	}
	id, err := s.repo.AddClient(ctx, in)
	if err != nil {
		return models.Client{}, err
	}
	return s.repo.GetClient(ctx, id)
}

// ListClients возвращает всех клиентов.
func (s *Service) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.repo.ListClients(ctx)
}

// GetClient возвращает клиента по ID.
func (s *Service) GetClient(ctx context.Context, clientID int64) (models.Client, error) {
	return s.repo.GetClient(ctx, clientID)
}

// Recommend подбирает следующую услугу для клиента по его текущей записи.
func (s *Service) Recommend(ctx context.Context, clientID int64) (string, error) {
	client, err := s.repo.GetClient(ctx, clientID)
	if err != nil {
		return "", err
	}
	return utils.RecommendService(client), nil
}

// AddService добавляет услугу в каталог. Стоимость сохраняется как введена.
func (s *Service) AddService(ctx context.Context, title, price string) (models.Service, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Service{}, fmt.Errorf("%w: 'Название услуги'", utils.ErrEmptyField)
	}
	id, err := s.repo.AddService(ctx, title, price)
	if err != nil {
		return models.Service{}, err
	}
	return models.Service{ID: id, Title: title, Price: price}, nil
}

// ListServices возвращает каталог услуг.
func (s *Service) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.repo.ListServices(ctx)
}
