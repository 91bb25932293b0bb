package job

import "strings"

func isValidJobID(jobID string) bool {
	return strings.TrimSpace(jobID) != ""
}

func isValidPickupCity(city string) bool {
	return strings.TrimSpace(city) != ""
}
