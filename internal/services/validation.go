package services

import "regexp"

// Accepted phone formats: an optional-plus international digit string
// (9 to 15 digits, optional leading 1) or NNN-NNN-NNNN.
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$|^\d{3}-\d{3}-\d{4}$`)

// ValidPhone treats an absent phone as valid.
func ValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}
