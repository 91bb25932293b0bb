package driver

import "time"

type DriverDB struct {
	ID        int64
	UserID    string
	Name      string
	Phone     string
	City      string
	IsOnline  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
