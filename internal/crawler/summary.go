package crawler

import (
	"fmt"
	"strconv"
	"text/tabwriter"
)

const summaryTabPadding = 2

func (c *crawler) printSummaryTable(results []RunResult) {
	counts := summaryCounts{}
	tw := tabwriter.NewWriter(c.stdout, 0, 0, summaryTabPadding, ' ', 0)
	if _, err := fmt.Fprintln(tw, colorize(colorMuted, "Run\tNmax\ttdiv\tdt\tGenes\tStatus")); err != nil {
		c.errln("summary header write failed:", err)
		return
	}
	for i := range results {
		r := &results[i]
		status := renderStatus(r, &counts)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name,
			formatInt(r.Record.Nmax),
			formatInt(r.Record.TDiv),
			formatDT(r.Record.DT),
			formatGenes(r.Record.NGenes),
			colorStatus(status),
		); err != nil {
			c.errln("summary row write failed:", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		c.errln("summary table flush failed:", err)
		return
	}

	c.outln("")
	c.outln(fmt.Sprintf("OK: %d    Error: %d", counts.ok, counts.err))
}

type summaryCounts struct {
	ok  int
	err int
}

func renderStatus(r *RunResult, counts *summaryCounts) string {
	if r.Error != "" {
		counts.err++
		return "error"
	}
	counts.ok++
	return "ok"
}

func formatInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

func formatDT(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatFloat(*v)
}

func formatGenes(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func colorStatus(status string) string {
	switch status {
	case "ok":
		return colorize(colorGreen, "%s", status)
	case "error":
		return colorize(colorRed, "%s", status)
	default:
		return colorize(colorYellow, "%s", status)
	}
}
