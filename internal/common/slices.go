package common

// OrEmpty returns s, or a non-nil empty slice when s is nil.
func OrEmpty[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}

	return s
}

// Duplicates returns the elements that occur more than once, in order of
// their second occurrence.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen := make(map[E]struct{}, len(s))

	var dups []E

	for _, e := range s {
		if _, ok := seen[e]; ok {
			dups = append(dups, e)
			continue
		}

		seen[e] = struct{}{}
	}

	return dups
}
