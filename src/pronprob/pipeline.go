package pronprob

import (
	"crypto/md5"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kalexmills/pronprob/src/dict"
)

const tempFile = "lexicon.temp"

// maxUnlistedLogged caps how many unknown pronunciations are logged on a line count mismatch.
const maxUnlistedLogged = 10

// Options configures one AddPronProbs run.
type Options struct {
	SrcDir     string // source dictionary directory
	Dir        string // output dictionary directory, created if absent
	PronCounts string // "count word phone..." table
	// SilCounts and BigramCounts are accepted for silence probabilities, which are not
	// computed yet.
	SilCounts    string
	BigramCounts string
	MaxNormalize bool
	CopyExtras   bool
}

// Result describes a finished run.
type Result struct {
	SourceLexicon string
	Lines         int
	Words         int
	LexiconDigest [md5.Size]byte
	CopiedFiles   []string
}

// Builder creates dictionary directories with pronunciation probabilities.
type Builder struct {
	log *slog.Logger
}

// NewBuilder creates a Builder that reports progress and diagnostics to log.
func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{log: log}
}

// AddPronProbs writes opts.Dir/lexicon.txt and opts.Dir/lexiconp.txt, the latter carrying
// add-one smoothed pronunciation probabilities estimated from opts.PronCounts. On failure the
// contents of opts.Dir are unreliable.
func (b *Builder) AddPronProbs(opts Options) (Result, error) {
	result := Result{}
	if !dict.NonEmptyFile(opts.PronCounts) {
		b.log.Error("expected pronunciation counts to exist", slog.String("path", opts.PronCounts))
		return result, fmt.Errorf("%w: %s", ErrMissingInput, opts.PronCounts)
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		b.log.Error("failed to create output directory", slog.String("path", opts.Dir), slog.String("error", err.Error()))
		return result, fmt.Errorf("%w %s: %w", ErrDirectoryCreation, opts.Dir, err)
	}

	srcLex, err := NormalizeLexicon(opts.SrcDir, opts.Dir)
	result.SourceLexicon = srcLex
	if err != nil {
		b.log.Error("could not normalize lexicon", slog.String("srcDir", opts.SrcDir), slog.String("error", err.Error()))
		return result, err
	}

	lexPath := filepath.Join(opts.Dir, dict.LexiconFile)
	lexicon, err := dict.ReadTableFile(lexPath)
	if err != nil {
		b.log.Error("could not read lexicon", slog.String("path", lexPath), slog.String("error", err.Error()))
		return result, err
	}
	nOld := len(lexicon)
	counts, err := dict.ReadTableFile(opts.PronCounts)
	if err != nil {
		b.log.Error("could not read pronunciation counts", slog.String("path", opts.PronCounts), slog.String("error", err.Error()))
		return result, err
	}

	agg, err := Aggregate(MergeCounts(lexicon, counts))
	if err != nil {
		b.log.Error("syntax error in counts", slog.String("lexicon", lexPath), slog.String("counts", opts.PronCounts), slog.String("error", err.Error()))
		return result, err
	}
	result.Words = len(agg.WordTotal)
	b.log.Debug("aggregated counts", slog.Int("words", len(agg.WordTotal)), slog.Int("prons", len(agg.PronTotal)))

	tempPath := filepath.Join(opts.Dir, tempFile)
	defer b.removeTemp(opts.Dir)
	if err := agg.WriteProbabilities(tempPath); err != nil {
		b.log.Error("failed to write to file", slog.String("path", tempPath), slog.String("error", err.Error()))
		return result, err
	}

	probPath := filepath.Join(opts.Dir, dict.LexiconProbFile)
	assembly, err := AssembleLexicon(tempPath, probPath, opts.MaxNormalize)
	if err != nil {
		b.log.Error("could not assemble lexicon", slog.String("path", probPath), slog.String("error", err.Error()))
		return result, err
	}
	b.removeTemp(opts.Dir)

	err = CheckConsistency(nOld, assembly.Written, ConsistencyError{
		LexiconPath:     lexPath,
		ProbLexiconPath: probPath,
		SrcDir:          opts.SrcDir,
		SrcLexicon:      srcLex,
	})
	if err != nil {
		b.logMismatch(err.(*ConsistencyError), lexicon, counts)
		return result, err
	}
	result.Lines = assembly.Written

	if opts.MaxNormalize {
		if err := MaxNormalize(probPath, assembly.MaxProb); err != nil {
			b.log.Error("could not max-normalize probabilities", slog.String("path", probPath), slog.String("error", err.Error()))
			return result, err
		}
	}

	if opts.CopyExtras {
		result.CopiedFiles, err = CopyExtras(opts.SrcDir, opts.Dir)
		if err != nil {
			b.log.Error("could not copy dictionary files", slog.String("srcDir", opts.SrcDir), slog.String("error", err.Error()))
			return result, err
		}
	}

	// TODO: write lexiconp_silprob.txt and silprob.txt from SilCounts and BigramCounts.
	b.log.Info("silence probabilities are under construction, skipping",
		slog.String("silCounts", opts.SilCounts), slog.String("bigramCounts", opts.BigramCounts))

	result.LexiconDigest = TableDigest(lexicon)
	b.log.Info("added pronunciation probabilities",
		slog.String("dir", opts.Dir), slog.Int("lines", result.Lines), slog.Int("words", result.Words),
		slog.Bool("maxNormalize", opts.MaxNormalize))
	return result, nil
}

func (b *Builder) logMismatch(err *ConsistencyError, lexicon, counts dict.Table) {
	b.log.Error("number of lines differs between lexicon and annotated lexicon",
		slog.String("lexicon", err.LexiconPath), slog.Int("nOld", err.Old),
		slog.String("lexiconp", err.ProbLexiconPath), slog.Int("nNew", err.New))
	b.log.Error("probably the pronunciation counts were generated from a different lexicon than srcDir; make sure the prons in src_lex and the counts look the same",
		slog.String("srcDir", err.SrcDir), slog.String("src_lex", err.SrcLexicon))

	unlisted := UnlistedProns(lexicon, counts)
	for i, u := range unlisted {
		if i == maxUnlistedLogged {
			b.log.Error("more pronunciations missing from lexicon", slog.Int("remaining", len(unlisted)-i))
			break
		}
		b.log.Error("pronunciation missing from lexicon", slog.String("pron", u.Key), slog.Int("count", u.Count))
	}
}

func (b *Builder) removeTemp(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.temp"))
	if err != nil {
		return
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			b.log.Warn("could not remove temporary file", slog.String("path", m), slog.String("error", err.Error()))
		}
	}
}
