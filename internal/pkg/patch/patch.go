package patch

// Set reports whether any of the given optional fields carries a value.
func Set(fields ...bool) bool {
	for _, f := range fields {
		if f {
			return true
		}
	}
	return false
}
