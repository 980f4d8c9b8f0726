package Trees

import (
	"testing"
)

var (
	bAddN = 100000
	bQryN = bAddN / 2
)

func create(b *testing.B) (*LinkedBST[int], []int) {
	b.Helper()
	tree := New[int]()
	all := rg.Perm(bAddN)
	for _, v := range all {
		tree.Add(v)
	}
	return tree, all
}

func BenchmarkAdd(b *testing.B) {
	all := rg.Perm(bAddN)
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		tree := New[int]()
		for _, v := range all {
			tree.Add(v)
		}
	}
}

func BenchmarkRemove(b *testing.B) {
	for it := 0; it < b.N; it++ {
		b.StopTimer()
		tree, all := create(b)
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

var sideEff bool

func BenchmarkContains(b *testing.B) {
	tree, all := create(b)
	b.Run("random", func(b *testing.B) {
		for it := 0; it < b.N; it++ {
			for _, v := range all[:bQryN] {
				sideEff = tree.Contains(v)
			}
		}
	})
	tree.Rebalance()
	b.Run("rebalanced", func(b *testing.B) {
		for it := 0; it < b.N; it++ {
			for _, v := range all[:bQryN] {
				sideEff = tree.Contains(v)
			}
		}
	})
}

func BenchmarkRebalance(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		tree.Rebalance()
	}
}
