package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/yurevych2/binary-search-tree/Trees"
)

const text = `the quick brown fox
jumps over
the lazy dog
and runs away`

func TestLoadWords(t *testing.T) {
	words, err := loadWords(strings.NewReader(text), 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 12 || words[0] != "the" || words[11] != "away" {
		t.Errorf("wrong words %v", words)
	}
	// stops after the line that went over the limit.
	words, _ = loadWords(strings.NewReader(text), 5)
	if len(words) != 6 {
		t.Errorf("read %d words, want 6", len(words))
	}
	words, _ = loadWords(strings.NewReader("  \n\t\n"), 5)
	if len(words) != 0 {
		t.Errorf("read words from blanks: %v", words)
	}
}

func TestBfsFind(t *testing.T) {
	tree := Trees.From(strings.Fields(text)...)
	for _, w := range strings.Fields(text) {
		if !bfsFind(tree, w) {
			t.Errorf("bfs did not find %q", w)
		}
	}
	if bfsFind(tree, "cat") {
		t.Errorf("bfs found a missing word")
	}
	if bfsFind(Trees.New[string](), "the") {
		t.Errorf("bfs found a word in an empty tree")
	}
}

func TestStats(t *testing.T) {
	m, s := stats([]int{2, 4, 4, 4, 5, 5, 7, 9})
	if m != 5 || s != 2 {
		t.Errorf("got mean %v stddev %v, want 5 2", m, s)
	}
	m, s = stats([]float64{1.5})
	if m != 1.5 || s != 0 {
		t.Errorf("got mean %v stddev %v", m, s)
	}
	if m, s = stats[time.Duration](nil); m != 0 || s != 0 {
		t.Errorf("empty input gave %v %v", m, s)
	}
	if _, s = stats([]int64{math.MaxInt32, math.MaxInt32}); s != 0 {
		t.Errorf("stddev of equal values is %v", s)
	}
}

func TestSearches(t *testing.T) {
	words := strings.Fields(text)
	ss, trees := searches(words)
	for _, w := range words {
		for _, s := range ss {
			if !s.find(w) {
				t.Errorf("%s did not find %q", s.name, w)
			}
		}
	}
	for _, s := range ss {
		if s.find("cat") {
			t.Errorf("%s found a missing word", s.name)
		}
	}
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	for _, tree := range trees {
		if tree.Size() != len(words) || !slices.Equal(tree.InOrder(), sorted) {
			t.Errorf("tree holds %v", tree.InOrder())
		}
	}
	if h := trees[1].Height(); h != len(words)-1 {
		t.Errorf("tree from sorted words has height %d, want %d", h, len(words)-1)
	}
	if h := trees[2].Height(); h != 3 {
		t.Errorf("rebalanced tree has height %d, want 3", h)
	}
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := run(config{path: path, limit: 8, seed: 1, rounds: 3}, &out); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.HasPrefix(s, "8 words\n") {
		t.Errorf("limit not reported:\n%s", s)
	}
	for _, name := range []string{"slices.Index", "rebalanced tree", "google/btree", "GoLLRB", "gods", "haxmap", "cornelk/hashmap", "xsync"} {
		if !strings.Contains(s, name) {
			t.Errorf("output has no %q:\n%s", name, s)
		}
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	os.WriteFile(empty, nil, 0o644)
	if err := run(config{path: empty, limit: 8, rounds: 1}, &out); err == nil {
		t.Errorf("no error for an empty file")
	}
	if err := run(config{path: filepath.Join(t.TempDir(), "missing"), limit: 8}, &out); err == nil {
		t.Errorf("no error for a missing file")
	}
}
