package db

import (
	"context"
	"crypto/md5"

	"github.com/google/uuid"
	"github.com/jonbodner/proteus"
)

type RunFlag int64

func (f RunFlag) MaxNormalized() bool {
	return f&RunMaxNormalized > 0
}

func (f RunFlag) SilenceRequested() bool {
	return f&RunSilenceRequested > 0
}

func (f RunFlag) Or(other RunFlag) RunFlag {
	return f | other
}

const (
	RunMaxNormalized RunFlag = 1 << iota
	RunSilenceRequested
)

// Run is one exported AddPronProbs invocation.
type Run struct {
	RunID      string  `prof:"run_id"`
	SrcDir     string  `prof:"src_dir"`
	DestDir    string  `prof:"dest_dir"`
	Flags      RunFlag `prof:"flags"`
	LexiconMD5 []byte  `prof:"lexicon_md5"`
}

// NewRun gives a run a fresh random ID.
func NewRun(srcDir, destDir string, flags RunFlag, digest [md5.Size]byte) Run {
	return Run{
		RunID:      uuid.NewString(),
		SrcDir:     srcDir,
		DestDir:    destDir,
		Flags:      flags,
		LexiconMD5: digest[:],
	}
}

var RunDAO RunDaoImpl

type RunDaoImpl struct {
	Insert   func(ctx context.Context, e proteus.ContextExecutor, r Run) (int64, error)          `proq:"q:insert" prop:"r"`
	FindByID func(ctx context.Context, e proteus.ContextQuerier, runID string) (Run, error)      `proq:"q:findByID" prop:"runID"`
	// FindByMD5 lists the runs made from the same canonical lexicon.
	FindByMD5 func(ctx context.Context, e proteus.ContextQuerier, md5Sum []byte) ([]Run, error) `proq:"q:findByMD5" prop:"md5Sum"`
}

func init() {
	m := proteus.MapMapper{
		"insert": `INSERT INTO run (run_id, src_dir, dest_dir, flags, lexicon_md5)
				   VALUES (:r.RunID:, :r.SrcDir:, :r.DestDir:, :r.Flags:, :r.LexiconMD5:)`,
		"findByID":  `SELECT run_id, src_dir, dest_dir, flags, lexicon_md5 FROM run WHERE run_id = :runID:`,
		"findByMD5": `SELECT run_id, src_dir, dest_dir, flags, lexicon_md5 FROM run WHERE lexicon_md5 = :md5Sum: ORDER BY created_at, run_id`,
	}
	err := proteus.ShouldBuild(context.Background(), &RunDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}
