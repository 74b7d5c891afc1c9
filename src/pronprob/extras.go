package pronprob

import (
	"io"
	"os"
	"path/filepath"
)

// ExtraFiles are the dictionary files other than the lexicon that a dictionary directory
// usually carries.
var ExtraFiles = []string{
	"silence_phones.txt",
	"nonsilence_phones.txt",
	"optional_silence.txt",
	"extra_questions.txt",
}

// CopyExtras copies every file of ExtraFiles present in srcDir into dir and returns the names
// copied. Files that already are the destination (dir resolves to srcDir) are left alone.
func CopyExtras(srcDir, dir string) ([]string, error) {
	var copied []string
	for _, name := range ExtraFiles {
		src := filepath.Join(srcDir, name)
		srcInfo, err := os.Stat(src)
		if os.IsNotExist(err) {
			continue
		}
		dst := filepath.Join(dir, name)
		if err == nil {
			if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
				continue
			}
		}
		if err := copyFile(src, dst); err != nil {
			return copied, err
		}
		copied = append(copied, name)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return writeError(dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return writeError(dst, err)
	}
	if err := out.Close(); err != nil {
		return writeError(dst, err)
	}
	return nil
}
