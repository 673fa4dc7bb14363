package cost

import (
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// Func returns the cost of moving from one word to a neighbor.
type Func func(from, to string) (int, error)

// Heuristic estimates the remaining cost from word to goal.
type Heuristic func(word, goal string) int

// letterCost maps 'A'..'Z' to a rarity cost in [1..5].
//
//	1: E T A O I N S R
//	2: H L D C U
//	3: M F P G W Y B
//	4: V K
//	5: J X Q Z
var letterCost = [26]int{
	'A' - 'A': 1, 'B' - 'A': 3, 'C' - 'A': 2, 'D' - 'A': 2, 'E' - 'A': 1,
	'F' - 'A': 3, 'G' - 'A': 3, 'H' - 'A': 2, 'I' - 'A': 1, 'J' - 'A': 5,
	'K' - 'A': 4, 'L' - 'A': 2, 'M' - 'A': 3, 'N' - 'A': 1, 'O' - 'A': 1,
	'P' - 'A': 3, 'Q' - 'A': 5, 'R' - 'A': 1, 'S' - 'A': 1, 'T' - 'A': 1,
	'U' - 'A': 2, 'V' - 'A': 4, 'W' - 'A': 3, 'X' - 'A': 5, 'Y' - 'A': 3,
	'Z' - 'A': 5,
}

// MaxLetterCost is the highest value LetterCost can return.
const MaxLetterCost = 5

// LetterCost returns the rarity cost of an uppercase letter. Bytes outside
// A–Z cost MaxLetterCost.
func LetterCost(c byte) int {
	if c < 'A' || c > 'Z' {
		return MaxLetterCost
	}

	return letterCost[c-'A']
}

// Unit charges 1 for any single-edit transition.
func Unit(from, to string) (int, error) {
	if _, err := changedAt(from, to); err != nil {
		return 0, err
	}

	return 1, nil
}

// LetterFrequency charges the rarity of the letter that to introduces at the
// first (and only) position where it differs from from.
func LetterFrequency(from, to string) (int, error) {
	i, err := changedAt(from, to)
	if err != nil {
		return 0, err
	}

	return LetterCost(to[i]), nil
}

// Hamming counts the positions where word and goal differ.
// Words of unequal length are compared over the shorter prefix, with every
// extra letter counted as a difference.
func Hamming(word, goal string) int {
	n, extra := len(word), len(goal)-len(word)
	if extra < 0 {
		n, extra = len(goal), -extra
	}
	d := extra
	for i := 0; i < n; i++ {
		if word[i] != goal[i] {
			d++
		}
	}

	return d
}

// PathCost sums fn over consecutive pairs of path. A single-word path costs 0.
func PathCost(path []string, fn Func) (int, error) {
	total := 0
	for i := 1; i < len(path); i++ {
		c, err := fn(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		total += c
	}

	return total, nil
}

// changedAt returns the index at which from and to differ, requiring exactly
// one differing position.
func changedAt(from, to string) (int, error) {
	first, count := core.Diff(from, to)
	if count != 1 {
		return -1, fmt.Errorf("%w: %q→%q", core.ErrInvalidTransition, from, to)
	}

	return first, nil
}
