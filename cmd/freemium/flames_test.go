package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/Veraticus/freemium-tools/internal/cli"
	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlamesCmd_Text(t *testing.T) {
	cfg := testConfig(t)

	out, _, err := execute(t, cfg, "flames", "Tom", "Tim")
	require.NoError(t, err)
	assert.Contains(t, out, "Love")
	assert.Contains(t, out, "Tom + Tim")
	assert.NotContains(t, out, "Calculation steps")

	out, _, err = execute(t, cfg, "flames", "Tom", "Tim", "--steps")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculation steps")
	assert.Contains(t, out, "Total remaining letters: 2")
}

func TestFlamesCmd_JSON(t *testing.T) {
	out, _, err := execute(t, testConfig(t), "flames", "Alice", "Bob", "--format", "json")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Alice", result["name1"])

	outcome, ok := result["outcome"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Love", outcome["category"])
	assert.InDelta(t, 8, outcome["remainder_count"], 0)
	assert.Contains(t, result["share"], "Alice and Bob's relationship type is Love!")
}

func TestFlamesCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{"blank first name", "Please enter the first name", []string{"flames", "  ", "Bob"}},
		{"no letters", "The second name must contain at least one letter", []string{"flames", "Bob", "123"}},
		{"bad format", "unknown format", []string{"flames", "Tom", "Tim", "--format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, testConfig(t), tt.args...)
			require.Error(t, err)
			assert.Contains(t, common.UserMessage(err), tt.want)
		})
	}
}

const batchInput = "Tom\tTim\n# comment\n\nAlice, Bob\nbroken\n,Bob\n"

func TestRunBatch_Text(t *testing.T) {
	var out strings.Builder
	summary, err := runBatch(context.Background(), strings.NewReader(batchInput), &out, io.Discard, formatText)
	require.NoError(t, err)

	assert.Equal(t, batchSummary{total: 4, scored: 2, failed: 2}, summary)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "1\tTom\tTim\t"))
	assert.Contains(t, lines[0], "Love")
	assert.True(t, strings.HasPrefix(lines[1], "4\tAlice\tBob\t"))
	assert.Contains(t, lines[2], errMalformedPair.Error())
	assert.Contains(t, lines[3], "Please enter the first name")
}

func TestRunBatch_JSON(t *testing.T) {
	var out strings.Builder
	_, err := runBatch(context.Background(), strings.NewReader(batchInput), &out, io.Discard, formatJSON)
	require.NoError(t, err)

	var results []map[string]any
	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	for scanner.Scan() {
		var r map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		results = append(results, r)
	}
	require.Len(t, results, 4)

	assert.InDelta(t, 1, results[0]["line"], 0)
	assert.NotNil(t, results[0]["outcome"])
	assert.Nil(t, results[2]["outcome"])
	assert.Equal(t, errMalformedPair.Error(), results[2]["error"])
}

func TestRunBatch_NoTrailingNewline(t *testing.T) {
	var out strings.Builder
	summary, err := runBatch(context.Background(), strings.NewReader("Tom,Tim"), &out, io.Discard, formatText)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.scored)
}

func TestRunBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runBatch(ctx, strings.NewReader(batchInput), io.Discard, io.Discard, formatText)
	assert.ErrorIs(t, err, cli.ErrInputCancelled)
}

func TestFlamesBatchCmd_Stdin(t *testing.T) {
	out, stderr, err := executeWithInput(t, testConfig(t), "Tom\tTim\nTom\n", "flames", "batch", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Love")
	assert.Contains(t, stderr, "Scored 1 of 2 pairs, 1 invalid")
}

func TestFlamesBatchCmd_MissingFile(t *testing.T) {
	_, _, err := execute(t, testConfig(t), "flames", "batch", "/does/not/exist.tsv")
	assert.ErrorContains(t, err, "failed to open batch file")
}

func TestSplitPair(t *testing.T) {
	tests := []struct {
		line    string
		name1   string
		name2   string
		wantErr bool
	}{
		{"Tom\tTim", "Tom", "Tim", false},
		{"Tom, Tim", "Tom", "Tim", false},
		{"Smith, Jo\tDoe, Al", "Smith, Jo", "Doe, Al", false},
		{"Tom", "", "", true},
		{"Tom,", "Tom", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name1, name2, err := splitPair(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, errMalformedPair)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name1, name1)
			assert.Equal(t, tt.name2, name2)
		})
	}
}
