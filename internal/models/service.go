package models

// Service - услуга из каталога.
// Price хранится текстом, чтобы допускать значения вроде "по договоренности".
type Service struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}
