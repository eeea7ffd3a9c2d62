package hmc

import (
	"errors"
	"sort"
	"testing"
)

func TestBuildTree_EmptyInput(t *testing.T) {
	_, err := buildTree("")
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("wrong error:\n\texpect: %v\n\tactual: %v", ErrEmptyInput, err)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root, err := buildTree("aaaa")
	if err != nil {
		t.Fatalf("buildTree failed: %v", err)
	}
	if !root.leaf() {
		t.Fatal("expected the root to be a bare leaf")
	}
	if root.symbol != 'a' {
		t.Errorf("wrong symbol:\n\texpect: %q\n\tactual: %q", 'a', root.symbol)
	}
}

func TestBuildTree_TwoChildrenInvariant(t *testing.T) {
	root, err := buildTree("abracadabra")
	if err != nil {
		t.Fatalf("buildTree failed: %v", err)
	}

	var walk func(n *node)
	walk = func(n *node) {
		if n.leaf() {
			if n.right != nil {
				t.Errorf("leaf %q has a right child", n.symbol)
			}
			return
		}
		if n.left == nil || n.right == nil {
			t.Error("internal node with fewer than two children")
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(root)
}

// optimalCost independently computes the minimum total bit count of any
// prefix-free code for the symbol frequencies of text, as the sum of merged
// weights over a sorted greedy merge.
func optimalCost(text string) int {
	freqs := make(map[rune]int)
	for _, r := range text {
		freqs[r]++
	}
	weights := make([]int, 0, len(freqs))
	for _, f := range freqs {
		weights = append(weights, f)
	}
	if len(weights) < 2 {
		return 0
	}
	var total int
	for len(weights) > 1 {
		sort.Ints(weights)
		merged := weights[0] + weights[1]
		total += merged
		weights = append([]int{merged}, weights[2:]...)
	}
	return total
}

func TestBuildTree_Optimality(t *testing.T) {
	testData := [...]string{
		"abracadabra",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
		"aaaaaaaaab",
		"abcdefgh",
		"日本語のテキストも日本語",
	}
	for _, text := range testData {
		t.Run(text, func(t *testing.T) {
			_, encoded, err := QuickEncode(text)
			if err != nil {
				t.Fatalf("QuickEncode failed: %v", err)
			}
			expect := optimalCost(text)
			actual := len(encoded)
			if expect != actual {
				t.Errorf("wrong total bit count:\n\texpect: %d\n\tactual: %d", expect, actual)
			}
		})
	}
}
