package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/cespare/xxhash/v2"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/yurevych2/binary-search-tree/Trees"
	"golang.org/x/exp/constraints"
)

type config struct {
	path   string
	limit  int
	seed   int64
	rounds int
}

// search is one way of looking up a word. find reports whether w was found.
type search struct {
	name string
	find func(w string) bool
}

// word orders strings for llrb.
type word string

func (a word) Less(b llrb.Item) bool {
	return a < b.(word)
}

func hashString(s string) uintptr {
	return uintptr(xxhash.Sum64String(s))
}

// loadWords reads whitespace separated words from r. Reading stops at the end
// of the first line after which more than limit words were read.
func loadWords(r io.Reader, limit int) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		words = append(words, strings.Fields(sc.Text())...)
		if len(words) > limit {
			break
		}
	}
	return words, sc.Err()
}

// bfsFind looks for w level by level, without using the ordering of the tree.
func bfsFind(t *Trees.LinkedBST[string], w string) bool {
	next := t.LevelOrder()
	for v, ok := next(); ok; v, ok = next() {
		if v == w {
			return true
		}
	}
	return false
}

// stats returns the mean and the population standard deviation of xs.
func stats[N constraints.Integer | constraints.Float](xs []N) (mean, stddev float64) {
	if len(xs) == 0 {
		return
	}
	for _, x := range xs {
		mean += float64(x)
	}
	mean /= float64(len(xs))
	for _, x := range xs {
		d := float64(x) - mean
		stddev += d * d
	}
	return mean, math.Sqrt(stddev / float64(len(xs)))
}

// measure runs f rounds times and returns the mean and stddev of the durations.
func measure(rounds int, f func()) (time.Duration, time.Duration) {
	ds := make([]time.Duration, max(rounds, 1))
	for i := range ds {
		start := time.Now()
		f()
		ds[i] = time.Since(start)
	}
	m, s := stats(ds)
	return time.Duration(m), time.Duration(s)
}

// searches builds every container from words and returns the lookups to time.
// The trees are returned too so their shapes can be reported.
func searches(words []string) ([]search, [3]*Trees.LinkedBST[string]) {
	sorted := slices.Clone(words)
	slices.Sort(sorted)

	inFileOrder := Trees.From(words...)
	fromSorted := Trees.NewWith[string](utils.StringComparator)
	rebalanced := Trees.New[string]()
	bt := btree.NewOrderedG[string](32)
	lr := llrb.New()
	rb := redblacktree.NewWith(utils.StringComparator)
	hm := hashmap.New[string, struct{}]()
	hx := haxmap.New[string, struct{}](uintptr(len(words)))
	hx.SetHasher(hashString)
	xs := xsync.NewMapOfWithHasher[string, struct{}](func(s string, seed uint64) uint64 {
		return xxhash.Sum64String(s) ^ seed
	})
	for _, w := range sorted {
		fromSorted.Add(w)
		rebalanced.Add(w)
		bt.ReplaceOrInsert(w)
		lr.ReplaceOrInsert(word(w))
		rb.Put(w, struct{}{})
		hm.Set(w, struct{}{})
		hx.Set(w, struct{}{})
		xs.Store(w, struct{}{})
	}
	rebalanced.Rebalance()

	return []search{
		{"slices.Index in a sorted list", func(w string) bool {
			return slices.Index(sorted, w) >= 0
		}},
		{"BFS in LinkedBST (words added in a row)", func(w string) bool {
			return bfsFind(inFileOrder, w)
		}},
		{"BFS in LinkedBST (words added from a sorted list)", func(w string) bool {
			return bfsFind(fromSorted, w)
		}},
		{"BFS in LinkedBST (rebalanced tree)", func(w string) bool {
			return bfsFind(rebalanced, w)
		}},
		{"LinkedBST.Contains (rebalanced tree)", rebalanced.Contains},
		{"google/btree", bt.Has},
		{"GoLLRB", func(w string) bool {
			return lr.Has(word(w))
		}},
		{"gods red-black tree", func(w string) bool {
			_, found := rb.Get(w)
			return found
		}},
		{"cornelk/hashmap", func(w string) bool {
			_, found := hm.Get(w)
			return found
		}},
		{"haxmap", func(w string) bool {
			_, found := hx.Get(w)
			return found
		}},
		{"xsync.MapOf", func(w string) bool {
			_, found := xs.Load(w)
			return found
		}},
	}, [3]*Trees.LinkedBST[string]{inFileOrder, fromSorted, rebalanced}
}

// run loads the words named by cfg, picks one at random and writes the time
// every search takes to find it to out.
func run(cfg config, out io.Writer) error {
	f, err := os.Open(cfg.path)
	if err != nil {
		return err
	}
	defer f.Close()
	words, err := loadWords(f, cfg.limit)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.path, err)
	}
	if len(words) == 0 {
		return errors.New("no words in " + cfg.path)
	}
	if len(words) > cfg.limit {
		fmt.Fprintf(out, "%d words\n", cfg.limit)
	}
	target := words[rand.New(rand.NewSource(cfg.seed)).Intn(min(len(words), max(cfg.limit, 1)))]
	ss, trees := searches(words)
	for _, t := range trees {
		fmt.Fprintf(out, "tree of %d words: height %d, balanced %v\n", t.Size(), t.Height(), t.IsBalanced())
	}
	fmt.Fprintf(out, "searching %q\n\n", target)
	for _, s := range ss {
		var found bool
		mean, stddev := measure(cfg.rounds, func() {
			found = s.find(target)
		})
		if !found {
			return fmt.Errorf("%s didn't find %q", s.name, target)
		}
		fmt.Fprintf(out, "%s: %v (stddev %v)\n", s.name, mean, stddev)
	}
	return nil
}
