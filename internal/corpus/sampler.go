package corpus

import (
	"fmt"
	"strings"
)

// DefaultBudget is the default global character allowance for one
// downstream prompt's worth of samples.
const DefaultBudget = 24000

// DefaultTruncationFloor is the minimum fragment length worth including.
// A truncated prefix shorter than this carries too little stylistic signal
// to be worth its space. Heuristic, tunable through SelectOptions.
const DefaultTruncationFloor = 200

// SelectOptions tunes one selection pass.
type SelectOptions struct {
	Budget          int // global character budget, honored literally; 0 selects nothing
	TruncationFloor int // minimum includable fragment; <=0 uses DefaultTruncationFloor
}

// CategoryResult reports what one category contributed to a selection.
type CategoryResult struct {
	Category string
	Seen     int // samples encountered in this category
	Included int // samples included, whole or truncated
	Chars    int // characters consumed against this category's share
}

// Selection is the outcome of one sampling pass: the ordered picks plus
// per-category and overall accounting. Recomputed on every call, never
// cached.
type Selection struct {
	Samples       []Sample
	Categories    []CategoryResult
	CategoryShare int // floor(budget / non-empty categories)
	TotalSeen     int
	TotalIncluded int
	TotalChars    int
}

// Select chooses a representative, budget-respecting subset of samples.
//
// Every non-empty category gets an equal share of the budget regardless of
// how many documents it holds, so one prolific category cannot starve a
// thin one. Within its share a category is walked in encounter order:
// samples that fit whole are taken whole; the first sample that would
// overflow is truncated to the remaining headroom if that headroom clears
// the truncation floor, and the category stops either way.
//
// Deterministic for identical ordered input and options; linear in the
// number of samples.
func Select(samples []Sample, opts SelectOptions) Selection {
	// The budget is taken at face value: zero means select nothing.
	// Callers wanting the standard allowance pass DefaultBudget.
	budget := opts.Budget
	floor := opts.TruncationFloor
	if floor <= 0 {
		floor = DefaultTruncationFloor
	}

	// Group by category, preserving encounter order of both categories
	// and samples within each.
	var order []string
	groups := make(map[string][]Sample)
	for _, s := range samples {
		if _, ok := groups[s.Category]; !ok {
			order = append(order, s.Category)
		}
		groups[s.Category] = append(groups[s.Category], s)
	}

	if len(order) == 0 {
		return Selection{}
	}
	share := budget / len(order)

	sel := Selection{CategoryShare: share}
	for _, category := range order {
		result, picked := selectCategory(category, groups[category], share, floor)
		sel.Samples = append(sel.Samples, picked...)
		sel.Categories = append(sel.Categories, result)
		sel.TotalSeen += result.Seen
		sel.TotalIncluded += result.Included
		sel.TotalChars += result.Chars
	}
	return sel
}

// selectCategory walks one category's samples against its share of the
// budget. One pass, constant bookkeeping.
func selectCategory(category string, samples []Sample, share, floor int) (CategoryResult, []Sample) {
	result := CategoryResult{Category: category, Seen: len(samples)}
	var picked []Sample

	for _, s := range samples {
		if result.Chars+s.Chars <= share {
			picked = append(picked, s)
			result.Included++
			result.Chars += s.Chars
			continue
		}

		headroom := share - result.Chars
		if headroom > floor {
			picked = append(picked, truncate(s, headroom))
			result.Included++
			result.Chars += headroom
		}
		// The category is done either way: no further samples are
		// considered, even partially.
		break
	}

	return result, picked
}

// truncate returns a copy of s cut to a prefix of exactly n characters.
func truncate(s Sample, n int) Sample {
	runes := []rune(s.Body)
	if n < len(runes) {
		s.Body = string(runes[:n])
	}
	s.Chars = n
	return s
}

// FormatSamples renders a selection as prompt text, one block per sample
// with category and title separators.
func FormatSamples(sel Selection) string {
	var out strings.Builder
	for i, s := range sel.Samples {
		if i > 0 {
			out.WriteString("\n\n")
		}
		fmt.Fprintf(&out, "### [%s] %s\n\n%s", s.Category, s.Title, s.Body)
	}
	return out.String()
}
