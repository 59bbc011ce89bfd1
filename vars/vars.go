package vars

import "strings"

// FirstNonZero returns the first value that is not the zero value of T.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}

// StrToBool accepts true/t/yes/y/on/1 in any case; everything else is false.
func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
