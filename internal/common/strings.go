package common

// UnknownStr is the fallback name for out-of-range enum values.
const UnknownStr = "unknown"

// JoinPath appends name to a dotted path. An empty parent yields name.
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "." + name
}
