package pronprob

import (
	"path/filepath"
	"testing"

	"github.com/kalexmills/pronprob/src/dict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCounts(t *testing.T) {
	lexicon := dict.Table{{"cat", "k", "ae", "t"}}
	counts := dict.Table{{"3", "cat", "k", "ae", "t"}}
	assert.Equal(t, dict.Table{
		{"1", "cat", "k", "ae", "t"},
		{"3", "cat", "k", "ae", "t"},
	}, MergeCounts(lexicon, counts))
}

func TestAggregate(t *testing.T) {
	lexicon := dict.Table{
		{"read", "r", "eh", "d"},
		{"read", "r", "iy", "d"},
		{"red", "r", "eh", "d"},
		{"unseen", "ah", "n"},
	}
	counts := dict.Table{
		{"2", "read", "r", "eh", "d"},
		{"7", "read", "r", "iy", "d"},
		{"5", "red", "r", "eh", "d"},
	}
	agg, err := Aggregate(MergeCounts(lexicon, counts))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"read": 11, "red": 6, "unseen": 1}, agg.WordTotal)
	// identical phones for different words stay apart
	assert.Equal(t, 3, agg.PronTotal["read r eh d"])
	assert.Equal(t, 6, agg.PronTotal["red r eh d"])
	assert.Equal(t, 8, agg.PronTotal["read r iy d"])
	assert.Equal(t, "red", agg.Pron2Word["red r eh d"])

	for _, record := range lexicon {
		assert.GreaterOrEqual(t, agg.PronTotal[dict.LexiconRecords(dict.Table{record})[0].Key()], 1)
	}
}

func TestAggregateMalformed(t *testing.T) {
	tests := []dict.Table{
		{{"0", "cat", "k"}},
		{{"-2", "cat", "k"}},
		{{"three", "cat", "k"}},
		{{"1.5", "cat", "k"}},
		{{"4"}},
	}
	for _, tt := range tests {
		_, err := Aggregate(tt)
		assert.ErrorIs(t, err, ErrMalformedCount, tt[0])
	}
}

func TestProbabilities(t *testing.T) {
	lexicon := dict.Table{{"the", "dh", "ah"}, {"the", "dh", "iy"}, {"cat", "k", "ae", "t"}}
	counts := dict.Table{{"4", "the", "dh", "ah"}, {"14", "the", "dh", "iy"}, {"3", "cat", "k", "ae", "t"}}
	agg, err := Aggregate(MergeCounts(lexicon, counts))
	require.NoError(t, err)

	probs := agg.Probabilities()
	assert.Equal(t, []ProbabilityRecord{
		{1.0, "cat k ae t"},
		{0.25, "the dh ah"},
		{0.75, "the dh iy"},
	}, probs)
}

func TestWriteProbabilities(t *testing.T) {
	agg, err := Aggregate(dict.Table{{"1", "a", "ah"}, {"2", "a", "ey"}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lexicon.temp")
	require.NoError(t, agg.WriteProbabilities(path))

	table, err := dict.ReadTableFile(path)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, []string{"a", "ah"}, table[0][1:])
	assert.Equal(t, []string{"a", "ey"}, table[1][1:])
	assert.Equal(t, "0.3333333333333333", table[0][0])
	assert.Equal(t, "0.6666666666666666", table[1][0])
}
