package models

// Order - заявка клиента на услугу.
// FinalPrice фиксируется при создании и не пересчитывается при изменении цены услуги.
type Order struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"client_id"`
	ServiceID       int64   `json:"service_id"`
	Date            string  `json:"date"`
	DiscountApplied float64 `json:"discount_applied"`
	FinalPrice      float64 `json:"final_price"`
	IsCompleted     bool    `json:"is_completed"`
}

// OrderView - заявка вместе с именем клиента и названием услуги, для списков.
type OrderView struct {
	Order
	ClientName   string `json:"client_name"`
	ServiceTitle string `json:"service_title"`
}
