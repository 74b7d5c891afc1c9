// count-check lists the pronunciations of a count file that are missing from a lexicon,
// most frequent first. A non-empty report means the counts were made with another lexicon.
package main

import (
	"fmt"
	"os"

	"github.com/kalexmills/pronprob/src/dict"
	"github.com/kalexmills/pronprob/src/pronprob"
	"github.com/spf13/pflag"
)

func main() {
	lexiconPath := pflag.StringP("lexicon", "l", "data/local/dict/lexicon.txt", "lexicon, one 'word phone...' per line")
	countsPath := pflag.StringP("counts", "c", "", "pronunciation counts, one 'count word phone...' per line")
	pflag.Parse()

	if *countsPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: count-check -l <lexicon> -c <pron-counts>")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	lexicon, err := dict.ReadTableFile(*lexiconPath)
	FatalError(err)
	counts, err := dict.ReadTableFile(*countsPath)
	FatalError(err)
	digest, err := pronprob.LexiconDigest(*lexiconPath)
	FatalError(err)

	unlisted := pronprob.UnlistedProns(lexicon, counts)
	for _, u := range unlisted {
		fmt.Println(u.Count, u.Key)
	}
	fmt.Fprintf(os.Stderr, "lexicon %s (md5 %x): %d unlisted pronunciations\n", *lexiconPath, digest, len(unlisted))
	if len(unlisted) > 0 {
		os.Exit(2)
	}
}

func FatalError(err error) {
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
}
