package dict

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	input := "cat  k ae t\n\n\tdog\td  ao g  \n   \nthe dh ah\n"
	table, err := ReadTable(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, Table{
		{"cat", "k", "ae", "t"},
		{"dog", "d", "ao", "g"},
		{"the", "dh", "ah"},
	}, table)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, Table{{"a", "ah"}, {"the", "dh", "iy"}})
	require.NoError(t, err)
	assert.Equal(t, "a ah\nthe dh iy\n", buf.String())
}

func TestTableFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	in := Table{{"1", "cat", "k", "ae", "t"}, {"3", "the", "dh", "ah"}}
	require.NoError(t, WriteTableFile(path, in))

	out, err := ReadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.True(t, NonEmptyFile(path))
}

func TestNonEmptyFile(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, WriteTableFile(empty, nil))

	assert.False(t, NonEmptyFile(empty))
	assert.False(t, NonEmptyFile(filepath.Join(dir, "missing.txt")))
	assert.False(t, NonEmptyFile(dir))
}

func TestWriteTableFileBadPath(t *testing.T) {
	err := WriteTableFile(filepath.Join(t.TempDir(), "no", "such", "dir", "x.txt"), Table{{"a"}})
	assert.Error(t, err)
}
