package search

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/dfreire/menukit/pkg/menu"
)

// Result is one matching menu node, with the matched ranges highlighted in
// markdown bold.
type Result struct {
	Title            string          `json:"title"`
	URL              string          `json:"url,omitempty"`
	Active           bool            `json:"active"`
	HighlightedTitle string          `json:"highlighted_title"`
	MatchPositions   []MatchPosition `json:"match_positions"`
}

func (r Result) String() string {
	if r.URL == "" {
		return "- " + r.HighlightedTitle
	}
	return fmt.Sprintf("- [%s](%s)", r.HighlightedTitle, r.URL)
}

type MatchPosition struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Search matches the pattern against every node title in pre-order. Groups
// are candidates as well as leaf entries.
func Search(nodes []menu.Node, pattern string, useRegexp, ignoreCase bool) []Result {
	var results []Result

	menu.WalkAll(nodes, func(n menu.Node, _ int) bool {
		title := n.Title()
		positions := FindMatches(title, pattern, useRegexp, ignoreCase)
		if len(positions) > 0 {
			results = append(results, Result{
				Title:            title,
				URL:              n.URL(),
				Active:           n.Active(),
				HighlightedTitle: HighlightMatches(title, positions),
				MatchPositions:   positions,
			})
		}
		return true
	})

	return results
}

func FindMatches(text, pattern string, useRegexp, ignoreCase bool) []MatchPosition {
	var positions []MatchPosition

	if useRegexp {
		re, err := CompileRegexp(pattern, ignoreCase)
		if err != nil {
			return positions
		}

		matches := re.FindAllStringIndex(text, -1)
		for _, match := range matches {
			positions = append(positions, MatchPosition{Start: match[0], End: match[1]})
		}
		return positions
	}

	searchText := text
	searchPattern := pattern
	var starts, ends []int

	if ignoreCase {
		// Folding can change byte length ("İ" folds to a longer sequence, "ß"
		// to "ss"), so matches are located in the folded text and every offset
		// is mapped back to rune boundaries of the original.
		fold := cases.Fold()
		searchText, starts, ends = foldIndex(text, fold)
		searchPattern = fold.String(pattern)
	}

	start := 0
	for {
		index := strings.Index(searchText[start:], searchPattern)
		if index == -1 {
			break
		}
		absIndex := start + index
		end := absIndex + len(searchPattern)

		pos := MatchPosition{Start: absIndex, End: end}
		if ignoreCase {
			pos = MatchPosition{Start: starts[absIndex], End: ends[end-1]}
		}
		// A fold expansion can yield two folded matches inside one original
		// rune; keep only the first.
		if len(positions) == 0 || pos.Start >= positions[len(positions)-1].End {
			positions = append(positions, pos)
		}
		start = end
	}

	return positions
}

// foldIndex folds text rune by rune and records, for every byte of the folded
// form, the start and end offsets of the original rune it came from.
func foldIndex(text string, fold cases.Caser) (string, []int, []int) {
	var b strings.Builder
	var starts, ends []int

	for i, r := range text {
		folded := fold.String(string(r))
		next := i + utf8.RuneLen(r)
		for j := 0; j < len(folded); j++ {
			starts = append(starts, i)
			ends = append(ends, next)
		}
		b.WriteString(folded)
	}
	return b.String(), starts, ends
}

func CompileRegexp(pattern string, ignoreCase bool) (*regexp.Regexp, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}

func HighlightMatches(text string, positions []MatchPosition) string {
	if len(positions) == 0 {
		return text
	}

	var result strings.Builder
	lastEnd := 0

	for _, pos := range positions {
		result.WriteString(text[lastEnd:pos.Start])
		result.WriteString("**")
		result.WriteString(text[pos.Start:pos.End])
		result.WriteString("**")
		lastEnd = pos.End
	}

	result.WriteString(text[lastEnd:])
	return result.String()
}
