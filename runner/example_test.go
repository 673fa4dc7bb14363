package runner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/runner"
)

func ExampleRunner_Run() {
	g, _ := core.Build([]string{"CAT", "COT", "COG", "DOG", "DOT", "CAG"})
	r, err := runner.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range runner.AllStrategies() {
		rec, _ := r.Run(context.Background(), s, "CAT", "DOG")
		fmt.Println(s, rec.Status, rec.Path)
	}
	// Output:
	// bfs found [CAT CAG COG DOG]
	// ids found [CAT CAG COG DOG]
	// ucs found [CAT CAG COG DOG]
	// ucs-letter found [CAT COT DOT DOG]
	// astar found [CAT CAG COG DOG]
}
