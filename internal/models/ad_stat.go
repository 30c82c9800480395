package models

// AdStat - одна запись рекламной кампании. Записей по одному каналу может быть несколько.
type AdStat struct {
	ID         int64   `json:"id"`
	Channel    string  `json:"channel"`
	Spend      float64 `json:"spend"`
	Revenue    float64 `json:"revenue"`
	Date       string  `json:"date"`
	Efficiency Ratio   `json:"efficiency"`
}

// NewAdStat - данные новой кампании.
type NewAdStat struct {
	Channel string  `json:"channel"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
	Date    string  `json:"date"`
}

// ChannelEfficiency - средняя эффективность (затраты/доход) по каналу.
type ChannelEfficiency struct {
	Channel    string `json:"channel"`
	Campaigns  int    `json:"campaigns"`
	Efficiency Ratio  `json:"efficiency"`
}
