// Command demo times how fast a word from a text file is found in a sorted
// slice, in LinkedBSTs of different shapes and in other ordered and hashed
// containers.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	var cfg config
	flag.StringVar(&cfg.path, "words", "words.txt", "file of whitespace separated words")
	flag.IntVar(&cfg.limit, "limit", 10000, "stop reading once more than this many words are read")
	flag.Int64Var(&cfg.seed, "seed", time.Now().UnixNano(), "seed for picking the word to search")
	flag.IntVar(&cfg.rounds, "rounds", 5, "times every search is repeated")
	flag.Parse()
	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}
