package typeahead

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"

	"github.com/atomicstack/headless-ui/internal/headless/selection"
)

// PrefixMatcher returns a Matcher that finds the next label starting with the
// query, ignoring case. Single-character queries start searching after the
// current item so repeated presses cycle through items sharing an initial;
// longer queries keep the current item when it still matches. A query made of
// one repeated character ("aaa") cycles like a single character.
func PrefixMatcher(labels []string) Matcher {
	folded := foldLabels(labels)
	return func(query string, current, count int) int {
		n := count
		if n > len(folded) {
			n = len(folded)
		}
		if n <= 0 || query == "" {
			return selection.NoIndex
		}
		q := cases.Fold().String(query)
		runes := []rune(q)
		if r, ok := repeatedRune(runes); ok {
			return scanPrefix(folded[:n], string(r), current, true)
		}
		return scanPrefix(folded[:n], q, current, false)
	}
}

// FuzzyMatcher returns a Matcher ranking labels with a case-insensitive fuzzy
// match. The closest match wins; ties go to the lowest index.
func FuzzyMatcher(labels []string) Matcher {
	targets := append([]string(nil), labels...)
	return func(query string, current, count int) int {
		n := count
		if n > len(targets) {
			n = len(targets)
		}
		trimmed := strings.TrimSpace(query)
		if n <= 0 || trimmed == "" {
			return selection.NoIndex
		}
		ranks := fuzzy.RankFindNormalizedFold(trimmed, targets[:n])
		if len(ranks) == 0 {
			return selection.NoIndex
		}
		best := ranks[0]
		for _, rank := range ranks[1:] {
			if rank.Distance < best.Distance {
				best = rank
				continue
			}
			if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
				best = rank
			}
		}
		return selection.ClampIndex(best.OriginalIndex, n)
	}
}

func scanPrefix(labels []string, prefix string, current int, skipCurrent bool) int {
	n := len(labels)
	start := 0
	if current >= 0 && current < n {
		start = current
		if skipCurrent {
			start = current + 1
		}
	}
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if strings.HasPrefix(labels[idx], prefix) {
			return idx
		}
	}
	return selection.NoIndex
}

func repeatedRune(runes []rune) (rune, bool) {
	if len(runes) == 0 {
		return 0, false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return 0, false
		}
	}
	return runes[0], true
}

func foldLabels(labels []string) []string {
	caser := cases.Fold()
	folded := make([]string, len(labels))
	for i, label := range labels {
		folded[i] = caser.String(strings.TrimSpace(label))
	}
	return folded
}
