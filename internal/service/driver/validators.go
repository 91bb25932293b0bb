package driver

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidUserID(userID string) bool {
	return strings.TrimSpace(userID) != ""
}

func isValidCity(city string) bool {
	return strings.TrimSpace(city) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
