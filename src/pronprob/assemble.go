package pronprob

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kalexmills/pronprob/src/dict"
)

// Assembly summarizes a written lexiconp.txt.
type Assembly struct {
	Written int
	// MaxProb is the largest probability per word among written records. Only filled when
	// tracking was requested.
	MaxProb map[string]float64
}

type probRow struct {
	prob   float64
	fields []string // prob word phone...
}

// byWordThenProb orders rows by word as text, then by probability as a number.
func byWordThenProb(a, b probRow) bool {
	if a.fields[1] != b.fields[1] {
		return a.fields[1] < b.fields[1]
	}
	return a.prob < b.prob
}

// AssembleLexicon turns the intermediate "prob word phone..." table at tempPath into a sorted
// "word prob phone..." lexicon at outPath, leaving out epsilon entries.
func AssembleLexicon(tempPath, outPath string, trackMax bool) (Assembly, error) {
	t, err := dict.ReadTableFile(tempPath)
	if err != nil {
		return Assembly{}, fmt.Errorf("could not read %s: %w", tempPath, err)
	}
	rows := make([]probRow, 0, len(t))
	for _, record := range t {
		if len(record) < 2 {
			return Assembly{}, fmt.Errorf("%w: short record %q in %s", ErrMalformedCount, strings.Join(record, " "), tempPath)
		}
		p, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return Assembly{}, fmt.Errorf("%w: bad probability %q in %s", ErrMalformedCount, record[0], tempPath)
		}
		rows = append(rows, probRow{prob: p, fields: record})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return byWordThenProb(rows[i], rows[j])
	})

	result := Assembly{}
	if trackMax {
		result.MaxProb = make(map[string]float64)
	}
	out := make(dict.Table, 0, len(rows))
	for _, row := range rows {
		record := append([]string{row.fields[1], row.fields[0]}, row.fields[2:]...)
		word := record[0]
		if dict.IsEpsilon(word) {
			continue
		}
		out = append(out, record)
		result.Written++

		if !trackMax {
			continue
		}
		if row.prob <= 0 {
			return Assembly{}, fmt.Errorf("%w: probability %v for %q in %s", ErrMalformedCount, row.prob, word, outPath)
		}
		if m, ok := result.MaxProb[word]; !ok || row.prob > m {
			result.MaxProb[word] = row.prob
		}
	}

	if err := dict.WriteTableFile(outPath, out); err != nil {
		return Assembly{}, writeError(outPath, err)
	}
	return result, nil
}
