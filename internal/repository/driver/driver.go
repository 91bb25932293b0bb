package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, user_id, name, phone, city, is_online, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	query := `INSERT INTO drivers (user_id, name, phone, city, is_online)
		VALUES ($1, $2, $3, $4, COALESCE($5, FALSE))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		driverModify.UserID,
		driverModify.Name,
		driverModify.Phone,
		driverModify.City,
		driverModify.IsOnline,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, driver.ErrConflict
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModify.Name != nil {
		builder = builder.Set("name", driverModify.Name)
	}
	if driverModify.Phone != nil {
		builder = builder.Set("phone", driverModify.Phone)
	}
	if driverModify.City != nil {
		builder = builder.Set("city", driverModify.City)
	}
	if driverModify.IsOnline != nil {
		builder = builder.Set("is_online", driverModify.IsOnline)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModify.ID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverDB DriverDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&driverDB.ID,
		&driverDB.UserID,
		&driverDB.Name,
		&driverDB.Phone,
		&driverDB.City,
		&driverDB.IsOnline,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	var driverDB DriverDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&driverDB.ID,
		&driverDB.UserID,
		&driverDB.Name,
		&driverDB.Phone,
		&driverDB.City,
		&driverDB.IsOnline,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository get error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE user_id = $1`

	var driverDB DriverDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&driverDB.ID,
		&driverDB.UserID,
		&driverDB.Name,
		&driverDB.Phone,
		&driverDB.City,
		&driverDB.IsOnline,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository get by user id error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository get all error: %w", err)
	}
	defer rows.Close()

	var drivers []entities.Driver
	for rows.Next() {
		var driverDB DriverDB
		err := rows.Scan(
			&driverDB.ID,
			&driverDB.UserID,
			&driverDB.Name,
			&driverDB.Phone,
			&driverDB.City,
			&driverDB.IsOnline,
			&driverDB.CreatedAt,
			&driverDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository scan error: %w", err)
		}
		drivers = append(drivers, *ToDomain(&driverDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository rows error: %w", err)
	}

	return drivers, nil
}
