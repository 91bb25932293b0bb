package driver

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	if driverModify.UserID == nil ||
		driverModify.Name == nil ||
		driverModify.Phone == nil ||
		driverModify.City == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidUserID(*driverModify.UserID) {
		return 0, ErrInvalidUserID
	}
	if !isValidName(*driverModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidCity(*driverModify.City) {
		return 0, ErrInvalidCity
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil {
		return nil, ErrInvalidDriverID
	}
	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.City == nil &&
		driverModify.IsOnline == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.City != nil && !isValidCity(*driverModify.City) {
		return nil, ErrInvalidCity
	}

	updated, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return updated, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	driverEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return driverEntity, nil
}

// GetDriverByUserID находит профиль водителя по идентификатору
// аутентифицированного пользователя (связь 1:1).
func (s *Driver) GetDriverByUserID(ctx context.Context, userID string) (*entities.Driver, error) {
	if !isValidUserID(userID) {
		return nil, ErrInvalidUserID
	}

	driverEntity, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver by user id: %w", err)
	}

	return driverEntity, nil
}

func (s *Driver) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}
