package claim

import (
	"errors"
	"fmt"
)

var (
	ErrMissingJobID   = errors.New("missing job id")
	ErrDriverNotFound = errors.New("driver profile not found")
	ErrDriverOffline  = errors.New("driver is not online")

	// ErrJobUnavailable — заказ уже назначен, отменён или иным образом вышел
	// из pending: заявка проиграна окончательно, повторов не делаем.
	ErrJobUnavailable = errors.New("job is no longer available")
)

// CityMismatchError — город водителя не совпал с городом забора заказа.
// Отдельный тип, чтобы ответ мог назвать оба города.
type CityMismatchError struct {
	DriverCity string
	PickupCity string
}

func (e *CityMismatchError) Error() string {
	return fmt.Sprintf("driver city %q does not match pickup city %q", e.DriverCity, e.PickupCity)
}
