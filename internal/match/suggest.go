package match

import (
	"cmp"
	"slices"
	"strings"
)

// MinSuggestScore is the similarity a name needs to be suggested.
const MinSuggestScore = 0.6

// NormalizeName lower-cases a property name and strips separators, so that
// "date_of_birth", "Date-Of-Birth" and "DateOfBirth" compare equal.
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if !isSeparator(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit names from known that look like name, best
// match first. Names equal after normalization score 1.
func Suggest(name string, known []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	target := NormalizeName(name)

	var hits []scored

	for _, k := range known {
		score := Similarity(target, NormalizeName(k))
		if score >= MinSuggestScore {
			hits = append(hits, scored{name: k, score: score})
		}
	}

	slices.SortFunc(hits, func(a, b scored) int {
		return cmp.Or(cmp.Compare(b.score, a.score), cmp.Compare(a.name, b.name))
	})

	out := make([]string, 0, min(limit, len(hits)))
	for _, h := range hits[:min(limit, len(hits))] {
		out = append(out, h.name)
	}

	return out
}
