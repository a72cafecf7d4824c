package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/timetable"
)

const (
	minCellWidth = 5
	ellipsis     = "…"
)

func (cli *commandLine) print(nt timetable.NewTimetable, seed int64) error {
	svc := cli.newService(seed)
	tt, err := svc.Generate(context.Background(), nt)
	if err != nil {
		return errors.Wrap(err, "generating timetable")
	}
	view := timetable.BuildView(tt, svc.Grid())
	return cli.printView(view, cli.cellWidth(len(view.Headers)+1))
}

// cellWidth returns the max cell width fitting the terminal, or 0 (unbounded) when out is not a terminal.
func (cli *commandLine) cellWidth(columns int) int {
	if !isTerminalFunc(cli.outFd) {
		return 0
	}
	width, _, err := getSizeFunc(cli.outFd)
	if err != nil || width <= 0 {
		return 0
	}
	w := width/columns - 1 // padding
	if w < minCellWidth {
		w = minCellWidth
	}
	return w
}

func (cli *commandLine) printView(view timetable.View, maxWidth int) error {
	tw := tabwriter.NewWriter(cli.out, 0, 0, 1, ' ', 0)

	cells := make([]string, 0, len(view.Headers)+1)
	cells = append(cells, "Day")
	for _, h := range view.Headers {
		cells = append(cells, truncate(h.Time, maxWidth))
	}
	fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")

	for _, row := range view.Rows {
		cells = cells[:0]
		cells = append(cells, truncate(row.Day, maxWidth))
		for _, c := range row.Cells {
			label := c.Label
			if label == "" {
				label = "-"
			}
			cells = append(cells, truncate(label, maxWidth))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	return errors.Wrap(tw.Flush(), "printing timetable")
}

// truncate shortens s to max runes, ending it with an ellipsis. max <= 0 means no limit.
func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + ellipsis
}
