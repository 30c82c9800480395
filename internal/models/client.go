package models

// Client - клиент агентства.
type Client struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Category       string `json:"category"`
	Region         string `json:"region"`
	IsRepeatClient bool   `json:"is_repeat_client"`
	Source         string `json:"source"`
	IsReferral     bool   `json:"is_referral"`
	AdChannel      string `json:"ad_channel"`
}

// NewClient - данные для регистрации клиента. ID и флаг повторного клиента назначает хранилище.
type NewClient struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Category   string `json:"category"`
	Region     string `json:"region"`
	Source     string `json:"source"`
	IsReferral bool   `json:"is_referral"`
	AdChannel  string `json:"ad_channel"`
}
