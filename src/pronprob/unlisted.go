package pronprob

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kalexmills/pronprob/src/dict"
)

// UnlistedPron is a pronunciation seen in a count file but missing from the lexicon.
type UnlistedPron struct {
	Key   string
	Count int
}

// UnlistedProns lists the pronunciation keys of counts that have no entry in lexicon, most
// frequent first. Count records that do not parse are skipped.
func UnlistedProns(lexicon, counts dict.Table) []UnlistedPron {
	known := make(map[string]struct{}, len(lexicon))
	for _, record := range lexicon {
		known[strings.Join(record, " ")] = struct{}{}
	}

	totals := make(map[string]int)
	for _, record := range counts {
		if len(record) < 2 {
			continue
		}
		count, err := strconv.Atoi(record[0])
		if err != nil || count < 1 {
			continue
		}
		key := strings.Join(record[1:], " ")
		if _, ok := known[key]; ok {
			continue
		}
		totals[key] += count
	}

	var results []UnlistedPron
	for key, count := range totals {
		results = append(results, UnlistedPron{key, count})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Key < results[j].Key
	})
	return results
}
