package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wordladder/runner"
)

func formatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func formatTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, n := range widths {
		seps[i] = strings.Repeat("-", n)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

var recordHeaders = []string{"STRATEGY", "START", "GOAL", "STATUS", "STEPS", "LETTER COST", "EXPANDED", "PEAK", "ELAPSED", "PATH"}

func recordRows(recs []runner.Record) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		steps, letters := "-", "-"
		if r.Steps >= 0 {
			steps, letters = strconv.Itoa(r.Steps), strconv.Itoa(r.LetterCost)
		}
		rows = append(rows, []string{
			r.Strategy.String(), r.Start, r.Goal, r.Status.String(), steps, letters,
			strconv.Itoa(r.Expanded), strconv.Itoa(r.PeakNodes), r.Elapsed.String(),
			strings.Join(r.Path, " → "),
		})
	}
	return rows
}

// outputRecords prints records in the selected format.
func (a *app) outputRecords(w io.Writer, v any, recs []runner.Record) error {
	if a.flagFmt == "json" {
		return formatJSON(w, v)
	}
	formatTable(w, recordHeaders, recordRows(recs))
	return nil
}
