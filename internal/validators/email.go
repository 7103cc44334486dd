package validators

import "regexp"

// Basic local@domain.tld shape check. Deliverability is not verified;
// confirmation emails bounce harmlessly if the address is wrong.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
