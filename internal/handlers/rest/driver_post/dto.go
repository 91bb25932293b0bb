package driver_post

type DriverCreate struct {
	UserID   string `json:"user_ID"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	IsOnline *bool  `json:"is_online,omitempty"`
}

type DriverCreateResponse struct {
	ID int64 `json:"id"`
}
