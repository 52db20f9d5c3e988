package domain

import (
	"slices"
	"strings"
)

// ContainsFold reports whether name contains query, ignoring case.
// An empty query matches everything.
func ContainsFold(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// CompareFold orders two names by their lower-cased bytes
func CompareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// SortApplications sorts apps by name, case-insensitively. Equal names keep
// their relative order.
func SortApplications(apps []Application) {
	slices.SortStableFunc(apps, func(a, b Application) int {
		return CompareFold(a.Name, b.Name)
	})
}

// SortFiles sorts files by name, case-insensitively. Equal names keep their
// relative order.
func SortFiles(files []File) {
	slices.SortStableFunc(files, func(a, b File) int {
		return CompareFold(a.Name, b.Name)
	})
}

// DedupApplications keeps one application per identity key. A later
// duplicate replaces the earlier one in place, so first-seen position is kept.
func DedupApplications(apps []Application) []Application {
	index := make(map[string]int, len(apps))
	out := make([]Application, 0, len(apps))
	for _, app := range apps {
		key := app.IdentityKey()
		if i, ok := index[key]; ok {
			out[i] = app
			continue
		}
		index[key] = len(out)
		out = append(out, app)
	}
	return out
}
