package validate

// IsCurrencyCode reports whether s looks like an ISO 4217 alphabetic code.
func IsCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
