package window

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mj1618/winctl/internal/platform"
)

// MatchSet maps lower-cased window titles to handles. Two visible windows
// with the same lower-cased title collapse to the later one in enumeration
// order; such windows cannot be told apart by title.
type MatchSet map[string]platform.Handle

// Titles returns the keys ordered by length in characters, shortest first,
// so that the most specific title wins. Equal lengths are ordered
// alphabetically.
func (m MatchSet) Titles() []string {
	titles := make([]string, 0, len(m))
	for t := range m {
		titles = append(titles, t)
	}
	sort.Slice(titles, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(titles[i]), utf8.RuneCountInString(titles[j])
		if li != lj {
			return li < lj
		}
		return titles[i] < titles[j]
	})
	return titles
}

// FindMatches walks every visible window and keeps those whose title
// contains all filters, case-insensitively.
func FindMatches(sys platform.WindowSystem, filters []string) (MatchSet, error) {
	lowered := make([]string, len(filters))
	for i, f := range filters {
		lowered[i] = strings.ToLower(f)
	}

	matches := make(MatchSet)
	err := sys.EnumWindows(func(h platform.Handle) bool {
		if !sys.IsWindowVisible(h) {
			return true
		}
		title, err := sys.WindowTitle(h)
		if err != nil {
			return true
		}
		title = strings.ToLower(title)
		if containsAll(title, lowered) {
			matches[title] = h
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate windows: %w", err)
	}
	return matches, nil
}

func containsAll(title string, filters []string) bool {
	for _, f := range filters {
		if !strings.Contains(title, f) {
			return false
		}
	}
	return true
}

// Select picks one match by 1-based position after sorting titles by length.
// Positions of zero or below select the first match.
func Select(sys platform.WindowSystem, filters []string, position int) (platform.Handle, error) {
	matches, err := FindMatches(sys, filters)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoMatch, filters)
	}

	idx := position
	if idx > 0 {
		idx--
	}
	if idx < 0 {
		idx = 0
	}
	titles := matches.Titles()
	if idx >= len(titles) {
		return 0, &PositionError{Position: position, Count: len(titles)}
	}
	return matches[titles[idx]], nil
}
