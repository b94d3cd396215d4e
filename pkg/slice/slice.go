package slice

// ReverseInPlace reverses s without allocating.
func ReverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Contains reports whether s holds value.
func Contains[T comparable](s []T, value T) bool {
	for _, a := range s {
		if a == value {
			return true
		}
	}
	return false
}
