package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonbodner/proteus"
	"github.com/kalexmills/pronprob/src/dict"
)

type PronProb struct {
	RunID string  `prof:"run_id"`
	Word  string  `prof:"word"`
	Pron  string  `prof:"pron"`
	Prob  float64 `prof:"prob"`
}

var PronProbDAO PronProbDaoImpl

type PronProbDaoImpl struct {
	Upsert     func(ctx context.Context, e proteus.ContextExecutor, p PronProb) (int64, error)                     `proq:"q:upsert" prop:"p"`
	FindByWord func(ctx context.Context, e proteus.ContextQuerier, runID string, word string) ([]PronProb, error) `proq:"q:findByWord" prop:"runID,word"`
	FindByRun  func(ctx context.Context, e proteus.ContextQuerier, runID string) ([]PronProb, error)              `proq:"q:findByRun" prop:"runID"`
}

func init() {
	m := proteus.MapMapper{
		"upsert": `INSERT INTO pron_prob (run_id, word, pron, prob)
				   VALUES (:p.RunID:, :p.Word:, :p.Pron:, :p.Prob:)
				   ON CONFLICT (run_id, word, pron)
				   DO UPDATE SET prob = excluded.prob`,
		"findByWord": `SELECT run_id, word, pron, prob FROM pron_prob WHERE run_id = :runID: AND word = :word: ORDER BY prob DESC, pron`,
		"findByRun":  `SELECT run_id, word, pron, prob FROM pron_prob WHERE run_id = :runID: ORDER BY word, prob, pron`,
	}
	err := proteus.ShouldBuild(context.Background(), &PronProbDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}

// Export stores run and its lexicon records in a single transaction.
func Export(ctx context.Context, DB *sql.DB, run Run, records []dict.ProbRecord) error {
	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := RunDAO.Insert(ctx, tx, run); err != nil {
		tx.Rollback()
		return fmt.Errorf("error while storing run %s: %w", run.RunID, err)
	}
	for _, r := range records {
		_, err := PronProbDAO.Upsert(ctx, tx, PronProb{
			RunID: run.RunID,
			Word:  r.Word,
			Pron:  r.Pron(),
			Prob:  r.Prob,
		})
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error while storing pronunciation %s %s: %w", r.Word, r.Pron(), err)
		}
	}
	return tx.Commit()
}
