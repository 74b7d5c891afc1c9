package pronprob

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput means a required input file is absent or empty.
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidLexicon means the source lexicon failed structural validation.
	ErrInvalidLexicon = errors.New("invalid lexicon")
	// ErrDirectoryCreation means the output directory could not be created.
	ErrDirectoryCreation = errors.New("could not create directory")
	// ErrMalformedCount covers bad count fields, bad probability fields and words missing
	// from the max-probability map.
	ErrMalformedCount = errors.New("malformed count")
	// ErrWrite means an output file could not be written.
	ErrWrite = errors.New("could not write file")
	// ErrConsistency means the annotated lexicon lost or gained lines.
	ErrConsistency = errors.New("lexicon line counts differ")
)

// ConsistencyError reports a line count mismatch between the canonical lexicon and the
// probability-annotated lexicon.
type ConsistencyError struct {
	Old, New        int
	LexiconPath     string
	ProbLexiconPath string
	SrcDir          string
	SrcLexicon      string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%v: %s has %d lines, %s has %d lines (src_lex %s)",
		ErrConsistency, e.LexiconPath, e.Old, e.ProbLexiconPath, e.New, e.SrcLexicon)
}

func (e *ConsistencyError) Unwrap() error {
	return ErrConsistency
}

func writeError(path string, err error) error {
	return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
}
