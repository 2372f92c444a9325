package utils

import "regexp"

// mobilePattern matches a 10-digit local mobile number whose first digit
// is 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// IsValidMobile reports whether s is a well-formed 10-digit mobile number.
// Pure and total: any input is answered, nothing is normalized.
func IsValidMobile(s string) bool {
	return mobilePattern.MatchString(s)
}
