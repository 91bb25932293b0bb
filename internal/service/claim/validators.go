package claim

import (
	"strings"

	"dispatch/internal/entities"
	"dispatch/pkg/citynorm"
)

// checkEligibility проверяет бизнес-предусловия заявки по профилю водителя.
// Чистая функция без побочных эффектов.
func checkEligibility(driver *entities.Driver, job *entities.Job) error {
	if !driver.IsOnline {
		return ErrDriverOffline
	}

	if !citynorm.Equal(driver.City, job.PickupCity) {
		return &CityMismatchError{
			DriverCity: driver.City,
			PickupCity: job.PickupCity,
		}
	}

	return nil
}

func isValidJobID(jobID string) bool {
	return strings.TrimSpace(jobID) != ""
}
