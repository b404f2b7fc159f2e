package station

import "strings"

// SameName reports whether two station names refer to the same stop:
// case-insensitive equality, or either name containing the other.
// Provider names often carry prefixes ("Posto Fronteiriço de Lótus") or
// differ only in capitalisation.
func SameName(a, b string) bool {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// Resolve returns the index of the first station with an alias matching
// name. ok is false when nothing matches.
func (r *Registry) Resolve(name string) (int, bool) {
	for i, s := range r.stations {
		for _, alias := range s.aliases() {
			if SameName(name, alias) {
				return i, true
			}
		}
	}
	return -1, false
}

// HopsBetween resolves both names and returns their hop count.
func (r *Registry) HopsBetween(from, to string) (int, bool) {
	i, ok := r.Resolve(from)
	if !ok {
		return 0, false
	}
	j, ok := r.Resolve(to)
	if !ok {
		return 0, false
	}
	return r.hops[i][j], true
}
