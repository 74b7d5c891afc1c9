package pronprob

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/kalexmills/pronprob/src/dict"
)

// NormalizeLexicon reads the lexicon in srcDir, drops the probability column if the source is
// a lexiconp.txt, sorts by word and writes dir/lexicon.txt. It returns the source file used.
func NormalizeLexicon(srcDir, dir string) (string, error) {
	srcLex, withProbs, ok := dict.SourceLexicon(srcDir)
	if !ok {
		return "", fmt.Errorf("%w: expected %s or %s in %s", ErrMissingInput, dict.LexiconFile, dict.LexiconProbFile, srcDir)
	}
	t, err := dict.ReadTableFile(srcLex)
	if err != nil {
		return srcLex, fmt.Errorf("could not read %s: %w", srcLex, err)
	}
	if err := dict.ValidateLexicon(t, withProbs); err != nil {
		return srcLex, fmt.Errorf("%w: %s: %w", ErrInvalidLexicon, srcLex, err)
	}
	if withProbs {
		for i, record := range t {
			t[i] = append(record[:1], record[2:]...)
		}
	}
	sort.SliceStable(t, func(i, j int) bool {
		return t[i][0] < t[j][0]
	})

	out := filepath.Join(dir, dict.LexiconFile)
	if err := dict.WriteTableFile(out, t); err != nil {
		return srcLex, writeError(out, err)
	}
	return srcLex, nil
}
