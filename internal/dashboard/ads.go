package dashboard

import (
	"context"
	"math"
	"sort"

	"marketing/internal/models"
	"marketing/internal/utils"
)

// AddCampaign проверяет форму и добавляет запись о кампании.
func (s *Service) AddCampaign(ctx context.Context, in models.NewAdStat) (models.AdStat, error) {
	in, err := utils.ValidateCampaignInput(in, s.now())
	if err != nil {
		return models.AdStat{}, err
	}
	id, err := s.repo.AddCampaign(ctx, in)
	if err != nil {
		return models.AdStat{}, err
	}
	return models.AdStat{
		ID:         id,
		Channel:    in.Channel,
		Spend:      in.Spend,
		Revenue:    in.Revenue,
		Date:       in.Date,
		Efficiency: utils.Efficiency(in.Spend, in.Revenue),
	}, nil
}

// ListCampaigns возвращает кампании с эффективностью по каждой строке.
func (s *Service) ListCampaigns(ctx context.Context) ([]models.AdStat, error) {
	return s.repo.ListCampaigns(ctx)
}

// ListAdChannels возвращает список каналов для выбора при регистрации клиента из рекламы.
func (s *Service) ListAdChannels(ctx context.Context) ([]string, error) {
	return s.repo.ListAdChannels(ctx)
}

// ChannelEfficiency считает среднюю эффективность по каждому каналу.
// Строки с неопределенной эффективностью (0/0) в среднее не входят, бесконечные входят.
// Канал, у которого все строки неопределены, получает NaN.
func (s *Service) ChannelEfficiency(ctx context.Context) ([]models.ChannelEfficiency, error) {
	stats, err := s.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return averageEfficiency(stats), nil
}

func averageEfficiency(stats []models.AdStat) []models.ChannelEfficiency {
	type acc struct {
		sum       float64
		n         int
		campaigns int
	}
	byChannel := map[string]*acc{}
	for _, st := range stats {
		a, ok := byChannel[st.Channel]
		if !ok {
			a = &acc{}
			byChannel[st.Channel] = a
		}
		a.campaigns++
		if math.IsNaN(float64(st.Efficiency)) {
			continue
		}
		a.sum += float64(st.Efficiency)
		a.n++
	}

	out := make([]models.ChannelEfficiency, 0, len(byChannel))
	for channel, a := range byChannel {
		mean := math.NaN()
		if a.n > 0 {
			mean = a.sum / float64(a.n)
		}
		out = append(out, models.ChannelEfficiency{Channel: channel, Campaigns: a.campaigns, Efficiency: models.Ratio(mean)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Channel < out[j].Channel })
	return out
}

// Summary возвращает общую аналитику.
func (s *Service) Summary(ctx context.Context) (models.Summary, error) {
	return s.repo.GetSummary(ctx)
}
