package dict

import (
	"bytes"
	"sort"
	"strings"
)

// ParseCMULine parses one line of the CMU pronouncing dictionary (0.7b layout: a word, two
// spaces, then ARPAbet phones). Alternate pronunciations such as "READ(1)" are folded onto the
// base word. ok is false for comments and malformed lines.
func ParseCMULine(line []byte) (LexiconRecord, bool) {
	if bytes.HasPrefix(line, []byte(";;;")) { // comment
		return LexiconRecord{}, false
	}
	tokens := bytes.SplitN(bytes.TrimRight(line, "\r\n"), []byte("  "), 2)
	if len(tokens) != 2 || len(tokens[0]) == 0 {
		return LexiconRecord{}, false
	}
	word := string(tokens[0])
	if word[len(word)-1] == ')' { // remove extra pronunciation count
		if open := strings.LastIndexByte(word, '('); open > 0 {
			word = word[:open]
		}
	}
	phones := strings.Fields(string(tokens[1]))
	if len(phones) == 0 {
		return LexiconRecord{}, false
	}
	return LexiconRecord{Word: word, Phones: phones}, true
}

// ParseCMUDict converts a whole CMU dictionary file into a lexicon table sorted by word.
// Pronunciation variants of a word keep their file order.
func ParseCMUDict(file []byte) Table {
	var t Table
	for _, line := range bytes.Split(file, []byte("\n")) {
		rec, ok := ParseCMULine(line)
		if ok {
			t = append(t, append([]string{rec.Word}, rec.Phones...))
		}
	}
	sort.SliceStable(t, func(i, j int) bool {
		return t[i][0] < t[j][0]
	})
	return t
}
