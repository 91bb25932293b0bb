package job

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidJobID          = errors.New("invalid job id")
	ErrInvalidPickupCity     = errors.New("invalid pickup city")

	ErrJobNotFound      = errors.New("job not found")
	ErrJobAlreadyExists = errors.New("job already exists")

	// ErrJobNotPending возвращается репозиторием, когда условный UPDATE не
	// затронул ни одной строки: заказ исчез либо уже вышел из pending.
	ErrJobNotPending = errors.New("job is not pending")
)
