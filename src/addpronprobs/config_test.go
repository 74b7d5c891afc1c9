package main

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/kalexmills/pronprob/src/pronprob"
	"github.com/kalexmills/pronprob/src/pronprob/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigFlags(t *testing.T) {
	conf, err := readConfig([]string{"--src-dir", "dict", "--dir", "dict_pp", "--pron-counts", "counts.txt", "--max-normalize=false"})
	require.NoError(t, err)
	assert.Equal(t, "dict", conf.SrcDir)
	assert.Equal(t, "dict_pp", conf.Dir)
	assert.Equal(t, "counts.txt", conf.PronCounts)
	assert.False(t, conf.MaxNormalize)
	assert.True(t, conf.CopyExtras)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Empty(t, conf.DBPath)
}

func TestReadConfigPositional(t *testing.T) {
	conf, err := readConfig([]string{"dict", "counts.txt", "dict_pp"})
	require.NoError(t, err)
	assert.Equal(t, "dict", conf.SrcDir)
	assert.Equal(t, "counts.txt", conf.PronCounts)
	assert.Equal(t, "dict_pp", conf.Dir)
	assert.True(t, conf.MaxNormalize)

	conf, err = readConfig([]string{"dict", "counts.txt", "sil.txt", "bigram.txt", "dict_pp"})
	require.NoError(t, err)
	assert.Equal(t, "sil.txt", conf.SilCounts)
	assert.Equal(t, "bigram.txt", conf.BigramCounts)
	assert.Equal(t, "dict_pp", conf.Dir)

	_, err = readConfig([]string{"dict", "dict_pp"})
	assert.Error(t, err)
}

func TestReadConfigEnv(t *testing.T) {
	t.Setenv("PRONPROB_DBPATH", "pronprob.sqlite3")
	t.Setenv("PRONPROB_MAXNORMALIZE", "false")

	conf, err := readConfig([]string{"dict", "counts.txt", "dict_pp"})
	require.NoError(t, err)
	assert.Equal(t, "pronprob.sqlite3", conf.DBPath)
	assert.False(t, conf.MaxNormalize)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		conf Config
		ok   bool
	}{
		{Config{SrcDir: "a", Dir: "b", PronCounts: "c"}, true},
		{Config{Dir: "b", PronCounts: "c"}, false},
		{Config{SrcDir: "a", PronCounts: "c"}, false},
		{Config{SrcDir: "a", Dir: "b"}, false},
		{Config{SrcDir: "a", Dir: "a", PronCounts: "c"}, false},
		{Config{SrcDir: "dict", Dir: "dict/", PronCounts: "c"}, false},
		{Config{SrcDir: "dict", Dir: "./dict", PronCounts: "c"}, false},
		{Config{SrcDir: "./dict/", Dir: "dict/../dict", PronCounts: "c"}, false},
		{Config{SrcDir: "dict", Dir: "dict_pp", PronCounts: "c"}, true},
	}
	for _, tt := range tests {
		err := tt.conf.Validate()
		assert.Equal(t, tt.ok, err == nil, tt.conf.String())
	}
}

func TestReadConfigRejectsSameDir(t *testing.T) {
	for _, args := range [][]string{
		{"dict", "counts.txt", "dict/"},
		{"dict", "counts.txt", "./dict"},
		{"--src-dir", "dict/", "--pron-counts", "counts.txt", "--dir", "dict"},
	} {
		_, err := readConfig(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestRunFlags(t *testing.T) {
	flags := runFlags(Config{MaxNormalize: true})
	assert.True(t, flags.MaxNormalized())
	assert.False(t, flags.SilenceRequested())

	flags = runFlags(Config{SilCounts: "sil.txt"})
	assert.False(t, flags.MaxNormalized())
	assert.True(t, flags.SilenceRequested())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "json")
	logger.Info("hidden")
	logger.Warn("shown", slog.String("path", "lexicon.txt"))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"path":"lexicon.txt"`)

	assert.Equal(t, slog.LevelDebug, parseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestExport(t *testing.T) {
	root := t.TempDir()
	conf := Config{
		SrcDir:       filepath.Join(root, "dict"),
		Dir:          filepath.Join(root, "dict_pp"),
		PronCounts:   filepath.Join(root, "pron_counts.txt"),
		MaxNormalize: true,
		DBPath:       filepath.Join(root, "pronprob.sqlite3"),
	}
	require.NoError(t, os.MkdirAll(conf.SrcDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(conf.SrcDir, "lexicon.txt"), []byte("the dh ah\nthe dh iy\n"), 0644))
	require.NoError(t, os.WriteFile(conf.PronCounts, []byte("4 the dh ah\n14 the dh iy\n"), 0644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	result, err := pronprob.NewBuilder(logger).AddPronProbs(conf.Options())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, export(ctx, logger, conf, result))

	sqlDB, err := sql.Open("sqlite3", conf.DBPath)
	require.NoError(t, err)
	defer sqlDB.Close()

	runs, err := db.RunDAO.FindByMD5(ctx, sqlDB, result.LexiconDigest[:])
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].Flags.MaxNormalized())

	probs, err := db.PronProbDAO.FindByWord(ctx, sqlDB, runs[0].RunID, "the")
	require.NoError(t, err)
	require.Len(t, probs, 2)
	assert.Equal(t, "dh iy", probs[0].Pron)
	assert.Equal(t, 1.0, probs[0].Prob)
	assert.InDelta(t, 1.0/3, probs[1].Prob, 1e-6)
}
