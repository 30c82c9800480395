package models

// Summary - общая аналитика для дашборда.
type Summary struct {
	TotalClients  int            `json:"total_clients"`
	TotalOrders   int            `json:"total_orders"`
	MoscowClients int            `json:"moscow_clients"`
	RegionClients int            `json:"region_clients"`
	RepeatClients int            `json:"repeat_clients"`
	Sources       map[string]int `json:"sources"`
}
