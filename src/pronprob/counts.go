package pronprob

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kalexmills/pronprob/src/dict"
)

// Aggregates holds count totals over a merged count table. Pronunciation keys are the word
// followed by its phones, since different words can share a phone sequence.
type Aggregates struct {
	WordTotal map[string]int
	PronTotal map[string]int
	Pron2Word map[string]string
}

// MergeCounts gives every lexicon record a count of 1 and appends the observed counts after
// them. The pseudo-count is the add-one smoothing prior.
func MergeCounts(lexicon, counts dict.Table) dict.Table {
	merged := make(dict.Table, 0, len(lexicon)+len(counts))
	for _, record := range lexicon {
		merged = append(merged, append([]string{"1"}, record...))
	}
	return append(merged, counts...)
}

// Aggregate sums counts per word and per pronunciation key. Records are "count word phone...".
func Aggregate(merged dict.Table) (*Aggregates, error) {
	a := &Aggregates{
		WordTotal: make(map[string]int),
		PronTotal: make(map[string]int),
		Pron2Word: make(map[string]string),
	}
	for _, record := range merged {
		if len(record) == 0 {
			continue
		}
		count, err := strconv.Atoi(record[0])
		if err != nil || count < 1 {
			return nil, fmt.Errorf("%w: bad count %q in record %q", ErrMalformedCount, record[0], strings.Join(record, " "))
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("%w: no word after count in record %q", ErrMalformedCount, strings.Join(record, " "))
		}
		word := record[1]
		key := strings.Join(record[1:], " ")
		a.WordTotal[word] += count
		a.PronTotal[key] += count
		a.Pron2Word[key] = word
	}
	return a, nil
}

// ProbabilityRecord is a pronunciation key with its estimated probability.
type ProbabilityRecord struct {
	Prob float64
	Key  string
}

// Probabilities divides each pronunciation total by its word total. Records come back in
// ascending key order.
func (a *Aggregates) Probabilities() []ProbabilityRecord {
	keys := make([]string, 0, len(a.PronTotal))
	for key := range a.PronTotal {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]ProbabilityRecord, 0, len(keys))
	for _, key := range keys {
		word := a.Pron2Word[key]
		result = append(result, ProbabilityRecord{
			Prob: float64(a.PronTotal[key]) / float64(a.WordTotal[word]),
			Key:  key,
		})
	}
	return result
}

// WriteProbabilities writes "prob word phone..." lines to path.
func (a *Aggregates) WriteProbabilities(path string) error {
	probs := a.Probabilities()
	t := make(dict.Table, 0, len(probs))
	for _, p := range probs {
		t = append(t, append([]string{strconv.FormatFloat(p.Prob, 'g', -1, 64)}, strings.Fields(p.Key)...))
	}
	if err := dict.WriteTableFile(path, t); err != nil {
		return writeError(path, err)
	}
	return nil
}
