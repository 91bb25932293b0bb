package entities

import "time"

type Driver struct {
	ID        int64
	UserID    string
	Name      string
	Phone     string
	City      string
	IsOnline  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverModify struct {
	ID       *int64
	UserID   *string
	Name     *string
	Phone    *string
	City     *string
	IsOnline *bool
}
