// Package flames implements the FLAMES name-compatibility calculation.
//
// Two names are reduced to their ASCII letters, letters shared by both names
// cancel pairwise (each letter of the first name claims the earliest
// unclaimed occurrence in the second), and the number of surviving letters
// selects one of Friends, Love, Affection, Marriage, Enemies or Siblings.
package flames

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxInputLength bounds each raw name, in characters. Cancellation is
// quadratic in the name lengths.
const MaxInputLength = 10000

// Match is one cancelled pair. FirstPos is a 1-based index into the first
// normalized name. SecondPos is 1-based within the second name as it
// stood when the match was made, after earlier matches were struck out.
type Match struct {
	Letter    string `json:"letter"`
	FirstPos  int    `json:"first_position"`
	SecondPos int    `json:"second_position"`
}

// Cancellation is the result of striking shared letters from both names.
type Cancellation struct {
	First   string  `json:"first"`
	Second  string  `json:"second"`
	Matches []Match `json:"matches"`
}

// Remaining returns the number of letters that survived cancellation.
func (c Cancellation) Remaining() int {
	return len(c.First) + len(c.Second)
}

// Outcome is a completed calculation.
type Outcome struct {
	Category         Category     `json:"category"`
	Description      string       `json:"description"`
	Icon             string       `json:"icon"`
	Color            string       `json:"color"`
	Trace            []string     `json:"trace"`
	Cancellation     Cancellation `json:"cancellation"`
	FirstNormalized  string       `json:"first_normalized"`
	SecondNormalized string       `json:"second_normalized"`
	RemainderCount   int          `json:"remainder_count"`
}

// Normalize lowercases name and drops every byte outside a-z.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Cancel strikes shared letters from two normalized names. Letters of first
// are visited left to right; each one cancels the leftmost occurrence of the
// same letter in second that has not already been cancelled. Survivors keep
// their original order.
func Cancel(first, second string) Cancellation {
	a := []byte(first)
	b := []byte(second)
	var matches []Match

	for i := range a {
		j := indexUnclaimed(b, a[i])
		if j < 0 {
			continue
		}
		matches = append(matches, Match{Letter: string(a[i]), FirstPos: i + 1, SecondPos: j + 1 - claimedBefore(b, j)})
		a[i] = 0
		b[j] = 0
	}

	return Cancellation{
		First:   survivors(a),
		Second:  survivors(b),
		Matches: matches,
	}
}

func indexUnclaimed(s []byte, c byte) int {
	for j, x := range s {
		if x == c {
			return j
		}
	}
	return -1
}

// claimedBefore counts the slots before j already struck out.
func claimedBefore(s []byte, j int) int {
	n := 0
	for _, x := range s[:j] {
		if x == 0 {
			n++
		}
	}
	return n
}

func survivors(s []byte) string {
	out := make([]byte, 0, len(s))
	for _, c := range s {
		if c != 0 {
			out = append(out, c)
		}
	}
	return string(out)
}

// Compute validates both names and runs the full calculation. Validation
// failures are returned as *ValidationError wrapping one of the Err*
// sentinels; the checks run in a fixed order and the first failure wins.
func Compute(name1, name2 string) (Outcome, error) {
	if strings.TrimSpace(name1) == "" {
		return Outcome{}, invalid(ErrMissingFirstName)
	}
	if strings.TrimSpace(name2) == "" {
		return Outcome{}, invalid(ErrMissingSecondName)
	}

	n1 := Normalize(name1)
	if n1 == "" {
		return Outcome{}, invalid(ErrNoLettersInFirstName)
	}
	n2 := Normalize(name2)
	if n2 == "" {
		return Outcome{}, invalid(ErrNoLettersInSecondName)
	}
	if utf8.RuneCountInString(name1) > MaxInputLength || utf8.RuneCountInString(name2) > MaxInputLength {
		return Outcome{}, invalid(ErrInputTooLong)
	}

	c := Cancel(n1, n2)
	trace := make([]string, 0, 6)
	trace = append(trace, describeMatches(c.Matches))
	trace = append(trace,
		"Remaining letters in first name: "+orNone(c.First),
		"Remaining letters in second name: "+orNone(c.Second),
	)

	count := c.Remaining()
	trace = append(trace, fmt.Sprintf("Total remaining letters: %d", count))

	var category Category
	if count == 0 {
		category = Love
		trace = append(trace, `All letters matched, defaulting to "Love"`)
	} else {
		category = fromRemainder(count)
		remainder := count % 6
		if remainder == 0 {
			remainder = 6
		}
		trace = append(trace,
			fmt.Sprintf("%d divided by 6 has a remainder of %d", count, remainder),
			fmt.Sprintf("This corresponds to %q in FLAMES", category.String()),
		)
	}

	info, _ := Lookup(category)
	return Outcome{
		Category:         category,
		Description:      info.Description,
		Icon:             info.Icon,
		Color:            info.Color,
		Trace:            trace,
		Cancellation:     c,
		FirstNormalized:  n1,
		SecondNormalized: n2,
		RemainderCount:   count,
	}, nil
}

func describeMatches(matches []Match) string {
	if len(matches) == 0 {
		return "No common letters found between the names"
	}
	parts := make([]string, 0, len(matches)*2)
	for _, m := range matches {
		parts = append(parts,
			fmt.Sprintf("%s at position %d in name 1", m.Letter, m.FirstPos),
			fmt.Sprintf("%s at position %d in name 2", m.Letter, m.SecondPos),
		)
	}
	return "Common letters removed: " + strings.Join(parts, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
