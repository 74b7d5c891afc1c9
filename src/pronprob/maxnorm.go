package pronprob

import (
	"fmt"
	"strconv"

	"github.com/kalexmills/pronprob/src/dict"
)

// MaxNormalize rewrites the lexiconp.txt at path so that each probability is divided by the
// largest probability of its word. The most likely variant of every word ends up at 1.
func MaxNormalize(path string, maxProb map[string]float64) error {
	t, err := dict.ReadTableFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}
	for i, record := range t {
		if len(record) < 2 {
			return fmt.Errorf("%w: %s line %d has no probability", ErrMalformedCount, path, i+1)
		}
		p, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: bad probability %q", ErrMalformedCount, path, i+1, record[1])
		}
		m, ok := maxProb[record[0]]
		if !ok || m <= 0 {
			return fmt.Errorf("%w: %s line %d: no maximum probability for %q", ErrMalformedCount, path, i+1, record[0])
		}
		record[1] = formatNormalized(p / m)
	}
	if err := dict.WriteTableFile(path, t); err != nil {
		return writeError(path, err)
	}
	return nil
}

// formatNormalized prints six decimals, or the shortest exact form when six decimals would
// round a positive value down to zero.
func formatNormalized(p float64) string {
	s := strconv.FormatFloat(p, 'f', 6, 64)
	if p > 0 && s == "0.000000" {
		return strconv.FormatFloat(p, 'g', -1, 64)
	}
	return s
}
