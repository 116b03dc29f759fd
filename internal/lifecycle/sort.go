package lifecycle

import (
	"slices"
	"strings"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
)

// SortNewestFirst orders pickups by numeric id, largest first. Ids are compared as
// decimal strings of any length. Non-numeric ids go last, in lexical order.
func SortNewestFirst(ps []entities.Pickup) {
	slices.SortStableFunc(ps, func(a, b entities.Pickup) int {
		return compareIDs(b.ID, a.ID)
	})
}

func compareIDs(a, b string) int {
	na, aok := normalizeNumeric(a)
	nb, bok := normalizeNumeric(b)
	switch {
	case aok && bok:
		if len(na) != len(nb) {
			return len(na) - len(nb)
		}
		return strings.Compare(na, nb)
	case aok:
		return 1
	case bok:
		return -1
	default:
		// both non-numeric: reversed so that the descending sort yields lexical order
		return strings.Compare(b, a)
	}
}

func normalizeNumeric(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return s, true
}

// FilterByPhone keeps the pickups placed by phone.
func FilterByPhone(ps []entities.Pickup, phone string) []entities.Pickup {
	out := make([]entities.Pickup, 0, len(ps))
	for _, p := range ps {
		if p.Phone == phone {
			out = append(out, p)
		}
	}
	return out
}

// Recent returns at most n pickups, newest first.
func Recent(ps []entities.Pickup, n int) []entities.Pickup {
	sorted := slices.Clone(ps)
	SortNewestFirst(sorted)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
