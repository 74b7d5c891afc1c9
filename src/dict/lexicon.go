package dict

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	LexiconFile     = "lexicon.txt"
	LexiconProbFile = "lexiconp.txt"
)

// Epsilon is the reserved non-lexical dictionary symbol.
const Epsilon = "<eps>"

// LexiconRecord is one pronunciation of a word.
type LexiconRecord struct {
	Word   string
	Phones []string
}

// Key returns the word and its phones joined by single spaces. Two words sharing a phone
// sequence get distinct keys.
func (r LexiconRecord) Key() string {
	return strings.Join(append([]string{r.Word}, r.Phones...), " ")
}

// ProbRecord is one line of a lexiconp.txt file.
type ProbRecord struct {
	Word   string
	Prob   float64
	Phones []string
}

// Pron returns the phones joined by single spaces.
func (r ProbRecord) Pron() string {
	return strings.Join(r.Phones, " ")
}

// IsEpsilon reports whether word is the epsilon marker. Anything starting with it counts.
func IsEpsilon(word string) bool {
	return strings.HasPrefix(word, Epsilon)
}

// SourceLexicon picks the lexicon file to read from a dictionary directory. lexicon.txt wins
// over lexiconp.txt when both are present and non-empty. withProbs is true when the chosen
// file carries a probability column.
func SourceLexicon(dir string) (path string, withProbs bool, ok bool) {
	if p := filepath.Join(dir, LexiconFile); NonEmptyFile(p) {
		return p, false, true
	}
	if p := filepath.Join(dir, LexiconProbFile); NonEmptyFile(p) {
		return p, true, true
	}
	return "", false, false
}

// ValidateLexicon checks the shape of every record in a lexicon table: a word and at least
// one phone, plus a probability in (0, 1] in second position when withProbs is set.
func ValidateLexicon(t Table, withProbs bool) error {
	minFields := 2
	if withProbs {
		minFields = 3
	}
	for i, record := range t {
		if len(record) < minFields {
			return fmt.Errorf("line %d: expected at least %d fields, got %d", i+1, minFields, len(record))
		}
		if !withProbs {
			continue
		}
		p, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return fmt.Errorf("line %d: bad pronunciation probability %q: %w", i+1, record[1], err)
		}
		if p <= 0 || p > 1 {
			return fmt.Errorf("line %d: pronunciation probability %v out of range (0, 1]", i+1, p)
		}
	}
	return nil
}

// LexiconRecords converts a word+phones table into records.
func LexiconRecords(t Table) []LexiconRecord {
	result := make([]LexiconRecord, 0, len(t))
	for _, record := range t {
		if len(record) == 0 {
			continue
		}
		result = append(result, LexiconRecord{Word: record[0], Phones: record[1:]})
	}
	return result
}

// LoadProbLexicon reads a lexiconp.txt file.
func LoadProbLexicon(path string) ([]ProbRecord, error) {
	t, err := ReadTableFile(path)
	if err != nil {
		return nil, err
	}
	result := make([]ProbRecord, 0, len(t))
	for i, record := range t {
		if len(record) < 2 {
			return nil, fmt.Errorf("%s line %d: expected word and probability", path, i+1)
		}
		p, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		result = append(result, ProbRecord{Word: record[0], Prob: p, Phones: record[2:]})
	}
	return result, nil
}
