package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kalexmills/pronprob/src/pronprob"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const usage = `usage: addpronprobs [options] <input-dict-dir> <input-pron-counts> [<input-sil-counts> <input-bigram-counts>] <output-dict-dir>

Creates a dictionary directory whose lexiconp.txt carries pronunciation probabilities
estimated from pronunciation counts (e.g. obtained by aligning training data).`

type Config struct {
	SrcDir       string
	Dir          string
	PronCounts   string
	SilCounts    string
	BigramCounts string
	MaxNormalize bool
	CopyExtras   bool
	DBPath       string
	LogLevel     string
	LogFormat    string
}

func (c Config) String() string {
	return fmt.Sprintf("\tSrcDir: %s\n\tDir: %s\n\tPronCounts: %s\n\tMaxNormalize: %t\n\tDBPath: %s\n",
		c.SrcDir, c.Dir, c.PronCounts, c.MaxNormalize, c.DBPath)
}

func (c Config) Validate() error {
	if c.SrcDir == "" {
		return errors.New("srcDir is required")
	}
	if c.Dir == "" {
		return errors.New("dir is required")
	}
	if c.PronCounts == "" {
		return errors.New("pronCounts is required")
	}
	if sameDir(c.SrcDir, c.Dir) {
		return fmt.Errorf("output dir %s must differ from the source dir", c.Dir)
	}
	return nil
}

// sameDir compares two directory paths after making them absolute.
func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(filepath.Clean(a))
	absB, errB := filepath.Abs(filepath.Clean(b))
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func (c Config) Options() pronprob.Options {
	return pronprob.Options{
		SrcDir:       c.SrcDir,
		Dir:          c.Dir,
		PronCounts:   c.PronCounts,
		SilCounts:    c.SilCounts,
		BigramCounts: c.BigramCounts,
		MaxNormalize: c.MaxNormalize,
		CopyExtras:   c.CopyExtras,
	}
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"src-dir":       "srcDir",
	"dir":           "dir",
	"pron-counts":   "pronCounts",
	"sil-counts":    "silCounts",
	"bigram-counts": "bigramCounts",
	"max-normalize": "maxNormalize",
	"copy-extras":   "copyExtras",
	"db-path":       "dbPath",
	"log-level":     "logLevel",
	"log-format":    "logFormat",
}

func readConfig(args []string) (Config, error) {
	v := viper.New()
	v.SetDefault("maxNormalize", true)
	v.SetDefault("copyExtras", true)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "text")

	fs := pflag.NewFlagSet("addpronprobs", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		fs.PrintDefaults()
	}
	fs.String("src-dir", "", "input dictionary directory holding lexicon.txt or lexiconp.txt")
	fs.String("dir", "", "output dictionary directory")
	fs.String("pron-counts", "", "pronunciation counts, one 'count word phone...' per line")
	fs.String("sil-counts", "", "silence counts (reserved, currently unused)")
	fs.String("bigram-counts", "", "pronunciation bigram counts (reserved, currently unused)")
	fs.Bool("max-normalize", true, "divide each pron-prob by the most likely pron-prob of its word")
	fs.Bool("copy-extras", true, "copy silence_phones.txt and friends from the input dictionary")
	fs.String("db-path", "", "sqlite database to export the probabilities to (disabled when empty)")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "text", "text or json")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, err
		}
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 3:
		v.Set("srcDir", rest[0])
		v.Set("pronCounts", rest[1])
		v.Set("dir", rest[2])
	case 5:
		v.Set("srcDir", rest[0])
		v.Set("pronCounts", rest[1])
		v.Set("silCounts", rest[2])
		v.Set("bigramCounts", rest[3])
		v.Set("dir", rest[4])
	default:
		fs.Usage()
		return Config{}, fmt.Errorf("expected 0, 3 or 5 arguments, got %d", len(rest))
	}

	v.SetEnvPrefix("PRONPROB")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.AddConfigPath("/etc/pronprob")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("could not read config file: %w", err)
		}
	}

	conf := Config{
		SrcDir:       v.GetString("srcDir"),
		Dir:          v.GetString("dir"),
		PronCounts:   v.GetString("pronCounts"),
		SilCounts:    v.GetString("silCounts"),
		BigramCounts: v.GetString("bigramCounts"),
		MaxNormalize: v.GetBool("maxNormalize"),
		CopyExtras:   v.GetBool("copyExtras"),
		DBPath:       v.GetString("dbPath"),
		LogLevel:     v.GetString("logLevel"),
		LogFormat:    v.GetString("logFormat"),
	}
	return conf, conf.Validate()
}
