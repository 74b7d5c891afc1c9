package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/kalexmills/pronprob/src/dict"
	"github.com/spf13/pflag"
)

func main() {
	input := pflag.StringP("input", "i", "data/cmudict-0.7b.txt", "CMU pronouncing dictionary")
	output := pflag.StringP("output", "o", "", "lexicon.txt to write (stdout when empty)")
	pflag.Parse()

	f, err := ioutil.ReadFile(*input)
	FatalError(err)
	table := dict.ParseCMUDict(f)

	if *output == "" {
		FatalError(dict.WriteTable(os.Stdout, table))
	} else {
		FatalError(dict.WriteTableFile(*output, table))
	}
	fmt.Fprintf(os.Stderr, "converted %d pronunciations\n", len(table))
	os.Exit(0)
}

func FatalError(err error) {
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
}
