//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	GetByUserID(ctx context.Context, userID string) (*entities.Driver, error)
	GetAll(ctx context.Context) ([]entities.Driver, error)
	Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error)
}
