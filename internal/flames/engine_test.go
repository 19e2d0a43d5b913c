package flames

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "mixed punctuation and case", input: "A1! b-C", want: "abc"},
		{name: "empty", input: "", want: ""},
		{name: "only digits", input: "12345", want: ""},
		{name: "full name with spaces", input: "Mary Jane Watson", want: "maryjanewatson"},
		{name: "non-ascii letters dropped", input: "José Ñuñez", want: "josuez"},
		{name: "already normalized", input: "tom", want: "tom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestCompute_Validation(t *testing.T) {
	tests := []struct {
		wantKind error
		name     string
		name1    string
		name2    string
		wantMsg  string
	}{
		{
			name:     "empty first name",
			name1:    "",
			name2:    "x",
			wantKind: ErrMissingFirstName,
			wantMsg:  "Please enter the first name",
		},
		{
			name:     "whitespace first name",
			name1:    "   \t",
			name2:    "x",
			wantKind: ErrMissingFirstName,
		},
		{
			name:     "both empty reports first name",
			name1:    "",
			name2:    "",
			wantKind: ErrMissingFirstName,
		},
		{
			name:     "empty second name",
			name1:    "x",
			name2:    " ",
			wantKind: ErrMissingSecondName,
			wantMsg:  "Please enter the second name",
		},
		{
			name:     "digits only first name",
			name1:    "123",
			name2:    "x",
			wantKind: ErrNoLettersInFirstName,
		},
		{
			name:     "missing second wins over letterless first",
			name1:    "123",
			name2:    "",
			wantKind: ErrMissingSecondName,
		},
		{
			name:     "letterless second name",
			name1:    "x",
			name2:    "!!!",
			wantKind: ErrNoLettersInSecondName,
		},
		{
			name:     "letterless first wins over letterless second",
			name1:    "42",
			name2:    "42",
			wantKind: ErrNoLettersInFirstName,
		},
		{
			name:     "oversized first name",
			name1:    strings.Repeat("a", MaxInputLength+1),
			name2:    "b",
			wantKind: ErrInputTooLong,
		},
		{
			name:     "oversized second name",
			name1:    "a",
			name2:    strings.Repeat("b", MaxInputLength+1),
			wantKind: ErrInputTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Compute(tt.name1, tt.name2)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantKind), "got %v, want %v", err, tt.wantKind)
			assert.Equal(t, Outcome{}, outcome)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.NotEmpty(t, verr.Message)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, verr.Error())
			}
		})
	}
}

func TestCompute_MaxLengthAccepted(t *testing.T) {
	outcome, err := Compute(strings.Repeat("a", MaxInputLength), "b")
	require.NoError(t, err)
	assert.Equal(t, MaxInputLength+1, outcome.RemainderCount)
}

func TestCompute_MaxLengthCountsCharacters(t *testing.T) {
	// 6000 two-byte characters are under the limit even though they take
	// 12000 bytes.
	_, err := Compute(strings.Repeat("é", 6000)+"a", "b")
	require.NoError(t, err)

	_, err = Compute(strings.Repeat("é", MaxInputLength)+"a", "b")
	assert.ErrorIs(t, err, ErrInputTooLong)
}

func TestCompute_ZeroRemainderFallsBackToLove(t *testing.T) {
	tests := []struct {
		name1 string
		name2 string
	}{
		{name1: "ab", name2: "ba"},
		{name1: "Tom", name2: "Tom"},
		{name1: "Tom", name2: "m.o.t."},
		{name1: "Anna", name2: "naan"},
	}

	for _, tt := range tests {
		t.Run(tt.name1+"/"+tt.name2, func(t *testing.T) {
			outcome, err := Compute(tt.name1, tt.name2)
			require.NoError(t, err)

			assert.Equal(t, Love, outcome.Category)
			assert.Equal(t, 0, outcome.RemainderCount)
			assert.Empty(t, outcome.Cancellation.First)
			assert.Empty(t, outcome.Cancellation.Second)
			assert.Equal(t, `All letters matched, defaulting to "Love"`, outcome.Trace[len(outcome.Trace)-1])
			assert.Equal(t, "There's a romantic spark between you two!", outcome.Description)
			assert.Equal(t, "red", outcome.Color)
		})
	}
}

func TestCompute_ModulusMapping(t *testing.T) {
	tests := []struct {
		name      string
		name1     string
		name2     string
		wantCount int
		want      Category
	}{
		{name: "one letter left", name1: "ab", name2: "a", wantCount: 1, want: Friends},
		{name: "two letters", name1: "a", name2: "b", wantCount: 2, want: Love},
		{name: "three letters", name1: "ab", name2: "c", wantCount: 3, want: Affection},
		{name: "four letters", name1: "ab", name2: "cd", wantCount: 4, want: Marriage},
		{name: "five letters", name1: "abc", name2: "de", wantCount: 5, want: Enemies},
		{name: "six letters", name1: "abc", name2: "def", wantCount: 6, want: Siblings},
		{name: "seven wraps to friends", name1: "abcd", name2: "efg", wantCount: 7, want: Friends},
		{name: "twelve wraps to siblings", name1: "abcdef", name2: "ghijkl", wantCount: 12, want: Siblings},
		{name: "alice and bob", name1: "Alice", name2: "Bob", wantCount: 8, want: Love},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Compute(tt.name1, tt.name2)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCount, outcome.RemainderCount)
			assert.Equal(t, tt.want, outcome.Category)

			info, ok := Lookup(tt.want)
			require.True(t, ok)
			assert.Equal(t, info.Description, outcome.Description)
			assert.Equal(t, info.Icon, outcome.Icon)
			assert.Equal(t, info.Color, outcome.Color)
		})
	}
}

func TestCancel_FirstOccurrenceWins(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
		want   Cancellation
	}{
		{
			name:   "leading duplicate in first name is the one cancelled",
			first:  "aba",
			second: "a",
			want: Cancellation{
				First:   "ba",
				Second:  "",
				Matches: []Match{{Letter: "a", FirstPos: 1, SecondPos: 1}},
			},
		},
		{
			name:   "earliest occurrence in second name is claimed",
			first:  "ba",
			second: "aab",
			want: Cancellation{
				First:  "",
				Second: "a",
				Matches: []Match{
					{Letter: "b", FirstPos: 1, SecondPos: 3},
					{Letter: "a", FirstPos: 2, SecondPos: 1},
				},
			},
		},
		{
			name:   "claimed letters are not matched twice",
			first:  "aa",
			second: "aa",
			want: Cancellation{
				Matches: []Match{
					{Letter: "a", FirstPos: 1, SecondPos: 1},
					{Letter: "a", FirstPos: 2, SecondPos: 1},
				},
			},
		},
		{
			name:   "interleaved repeats",
			first:  "abca",
			second: "aac",
			want: Cancellation{
				First:  "b",
				Second: "",
				Matches: []Match{
					{Letter: "a", FirstPos: 1, SecondPos: 1},
					{Letter: "c", FirstPos: 3, SecondPos: 2},
					{Letter: "a", FirstPos: 4, SecondPos: 1},
				},
			},
		},
		{
			name:   "disjoint names",
			first:  "alice",
			second: "bob",
			want:   Cancellation{First: "alice", Second: "bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cancel(tt.first, tt.second)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Cancel(%q, %q) mismatch (-want +got):\n%s", tt.first, tt.second, diff)
			}
		})
	}
}

// multisetDifference removes shared letters by count alone, ignoring
// which occurrence is struck. Survivors are returned in sorted order.
func multisetDifference(first, second string) (string, string) {
	var counts [26]int
	for i := 0; i < len(first); i++ {
		counts[first[i]-'a']++
	}
	for i := 0; i < len(second); i++ {
		counts[second[i]-'a']--
	}
	var a, b strings.Builder
	for c, n := range counts {
		for ; n > 0; n-- {
			a.WriteByte(byte('a' + c))
		}
		for ; n < 0; n++ {
			b.WriteByte(byte('a' + c))
		}
	}
	return a.String(), b.String()
}

func sortedLetters(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

func TestCancel_AgreesWithMultisetDifferenceOnCounts(t *testing.T) {
	pairs := [][2]string{
		{"aba", "a"},
		{"abca", "aac"},
		{"harrypotter", "hermionegranger"},
		{"mississippi", "missouri"},
	}

	for _, p := range pairs {
		got := Cancel(p[0], p[1])
		first, second := multisetDifference(p[0], p[1])
		assert.Equal(t, first, sortedLetters(got.First), "pair %v", p)
		assert.Equal(t, second, sortedLetters(got.Second), "pair %v", p)
	}
}

func TestCancel_OrderAndPositionsDifferFromMultisetDifference(t *testing.T) {
	// Only the letters that survive and where matches were found depend on
	// the order of cancellation, not how many letters remain.
	got := Cancel("aba", "a")
	first, _ := multisetDifference("aba", "a")
	assert.Equal(t, "ab", first)
	assert.Equal(t, "ba", got.First, "the leading a is struck, the later one survives in place")

	got = Cancel("cba", "abc")
	first, second := multisetDifference("cba", "abc")
	assert.Empty(t, first)
	assert.Empty(t, second)
	assert.Equal(t, []Match{
		{Letter: "c", FirstPos: 1, SecondPos: 3},
		{Letter: "b", FirstPos: 2, SecondPos: 2},
		{Letter: "a", FirstPos: 3, SecondPos: 1},
	}, got.Matches)

	outcome, err := Compute("aba", "a")
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.RemainderCount)
}

func TestCancel_PairInvariant(t *testing.T) {
	pairs := [][2]string{
		{"tom", "tom"},
		{"harrypotter", "hermionegranger"},
		{"aaaa", "a"},
		{"a", "aaaa"},
		{"mississippi", "missouri"},
		{"xyz", "abc"},
	}

	for _, p := range pairs {
		c := Cancel(p[0], p[1])
		assert.Equal(t, len(p[0])+len(p[1])-2*len(c.Matches), c.Remaining(), "pair %v", p)
	}
}

func TestCompute_Trace(t *testing.T) {
	outcome, err := Compute("Tom", "Tim")
	require.NoError(t, err)

	want := []string{
		"Common letters removed: t at position 1 in name 1, t at position 1 in name 2, m at position 3 in name 1, m at position 2 in name 2",
		"Remaining letters in first name: o",
		"Remaining letters in second name: i",
		"Total remaining letters: 2",
		"2 divided by 6 has a remainder of 2",
		`This corresponds to "Love" in FLAMES`,
	}
	assert.Equal(t, want, outcome.Trace)
}

func TestCompute_TraceRepeatedLetters(t *testing.T) {
	outcome, err := Compute("abca", "aac")
	require.NoError(t, err)

	assert.Equal(t,
		"Common letters removed: a at position 1 in name 1, a at position 1 in name 2, "+
			"c at position 3 in name 1, c at position 2 in name 2, "+
			"a at position 4 in name 1, a at position 1 in name 2",
		outcome.Trace[0])
	assert.Equal(t, "Remaining letters in first name: b", outcome.Trace[1])
	assert.Equal(t, "Remaining letters in second name: None", outcome.Trace[2])
}

func TestCompute_TraceNoCommonLetters(t *testing.T) {
	outcome, err := Compute("abc", "def")
	require.NoError(t, err)

	require.NotEmpty(t, outcome.Trace)
	assert.Equal(t, "No common letters found between the names", outcome.Trace[0])
	assert.Equal(t, "6 divided by 6 has a remainder of 6", outcome.Trace[4])
	assert.Contains(t, outcome.Trace[len(outcome.Trace)-1], "Siblings")
}

func TestCompute_TraceNamesCategory(t *testing.T) {
	pairs := [][2]string{
		{"Romeo", "Juliet"},
		{"Harry", "Sally"},
		{"Tom", "Tom"},
		{"Bonnie", "Clyde"},
		{"Sam", "Frodo"},
	}

	for _, p := range pairs {
		outcome, err := Compute(p[0], p[1])
		require.NoError(t, err)
		require.NotEmpty(t, outcome.Trace)
		assert.Contains(t, outcome.Trace[len(outcome.Trace)-1], outcome.Category.String())
	}
}

func TestCompute_Deterministic(t *testing.T) {
	first, err := Compute("Elizabeth Bennet", "Fitzwilliam Darcy")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Compute("Elizabeth Bennet", "Fitzwilliam Darcy")
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("outcome changed between calls (-first +again):\n%s", diff)
		}
	}
}

func TestCompute_ConcurrentCallers(t *testing.T) {
	want, err := Compute("Romeo", "Juliet")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Outcome, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Compute("Romeo", "Juliet")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestCompute_KeepsNormalizedNames(t *testing.T) {
	outcome, err := Compute("  Mary-Jane ", "PETER parker")
	require.NoError(t, err)
	assert.Equal(t, "maryjane", outcome.FirstNormalized)
	assert.Equal(t, "peterparker", outcome.SecondNormalized)
}
