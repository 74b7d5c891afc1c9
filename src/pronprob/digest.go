package pronprob

import (
	"bytes"
	"crypto/md5"

	"github.com/kalexmills/pronprob/src/dict"
)

// LexiconDigest hashes the lexicon table at path. The table is re-serialized first, so files
// that differ only in whitespace or blank lines hash the same.
func LexiconDigest(path string) ([md5.Size]byte, error) {
	t, err := dict.ReadTableFile(path)
	if err != nil {
		return [md5.Size]byte{}, err
	}
	return TableDigest(t), nil
}

// TableDigest hashes the serialized form of t.
func TableDigest(t dict.Table) [md5.Size]byte {
	var buf bytes.Buffer
	_ = dict.WriteTable(&buf, t) // writes to a bytes.Buffer do not fail
	return md5.Sum(buf.Bytes())
}
