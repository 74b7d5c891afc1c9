package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kalexmills/pronprob/src/dict"
	"github.com/kalexmills/pronprob/src/pronprob"
	"github.com/kalexmills/pronprob/src/pronprob/db"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	conf, err := readConfig(os.Args[1:])
	logger := newLogger(os.Stderr, conf.LogLevel, conf.LogFormat)
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Debug(fmt.Sprintf("addpronprobs config:\n%v", conf))

	result, err := pronprob.NewBuilder(logger).AddPronProbs(conf.Options())
	if err != nil {
		logger.Error("failed adding pronunciation probabilities", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if conf.DBPath != "" {
		if err := export(context.Background(), logger, conf, result); err != nil {
			logger.Error("failed exporting pronunciation probabilities", slog.String("dbPath", conf.DBPath), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func export(ctx context.Context, logger *slog.Logger, conf Config, result pronprob.Result) error {
	sqlDB, err := sql.Open("sqlite3", conf.DBPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	if err := db.BootstrapDB(sqlDB, logger); err != nil {
		return err
	}

	records, err := dict.LoadProbLexicon(filepath.Join(conf.Dir, dict.LexiconProbFile))
	if err != nil {
		return err
	}
	run := db.NewRun(conf.SrcDir, conf.Dir, runFlags(conf), result.LexiconDigest)
	if err := db.Export(ctx, sqlDB, run, records); err != nil {
		return err
	}
	logger.Info("exported pronunciation probabilities",
		slog.String("runID", run.RunID), slog.String("dbPath", conf.DBPath), slog.Int("records", len(records)))
	return nil
}

func runFlags(conf Config) db.RunFlag {
	flags := db.RunFlag(0)
	if conf.MaxNormalize {
		flags |= db.RunMaxNormalized
	}
	if conf.SilCounts != "" {
		flags |= db.RunSilenceRequested
	}
	return flags
}
