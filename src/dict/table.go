package dict

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Table is a whitespace-delimited text table, one record per line.
type Table [][]string

// ReadTable parses r into a Table. Runs of whitespace are collapsed and blank lines skipped.
func ReadTable(r io.Reader) (Table, error) {
	var t Table
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		t = append(t, fields)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadTableFile is a convenience wrapper that opens a file path.
func ReadTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}

// WriteTable writes each record space-joined on its own line.
func WriteTable(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	for _, record := range t {
		if _, err := bw.WriteString(strings.Join(record, " ")); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteTableFile creates (or truncates) path and writes t to it.
func WriteTableFile(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTable(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// NonEmptyFile reports whether path exists and holds at least one byte.
func NonEmptyFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
