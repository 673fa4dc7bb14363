package ucs_test

import (
	"fmt"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/cost"
	"github.com/katalvlaran/wordladder/ucs"
)

// ExampleUCS contrasts unit cost with letter-frequency cost on a graph where
// the shortest ladder passes through the rare letter Z.
func ExampleUCS() {
	g, err := core.Build([]string{"AAA", "AZA", "BZA", "BBA", "AEA", "EEA", "EBA"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	unit, _ := ucs.UCS(g, "AAA", "BBA")
	letters, _ := ucs.UCS(g, "AAA", "BBA", ucs.WithCost(cost.LetterFrequency))
	fmt.Println(unit.Path, unit.Cost)
	fmt.Println(letters.Path, letters.Cost)
	// Output:
	// [AAA AZA BZA BBA] 3
	// [AAA AEA EEA EBA BBA] 8
}
