package driver_put

type DriverUpdate struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	City     *string `json:"city,omitempty"`
	IsOnline *bool   `json:"is_online,omitempty"`
}

type DriverResponse struct {
	ID       int64  `json:"id"`
	UserID   string `json:"user_ID"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	IsOnline bool   `json:"is_online"`
}
