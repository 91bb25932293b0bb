package driver

import "dispatch/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:        d.ID,
		UserID:    d.UserID,
		Name:      d.Name,
		Phone:     d.Phone,
		City:      d.City,
		IsOnline:  d.IsOnline,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
