package drivers_get

type DriverResponse struct {
	ID       int64  `json:"id"`
	UserID   string `json:"user_ID"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	IsOnline bool   `json:"is_online"`
}
