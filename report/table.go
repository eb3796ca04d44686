package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

var columns = []string{"Algorithm", "Success", "Optimal", "Cost", "Expanded", "Peak memory", "Time (s)"}

// Table writes an aligned comparison table, one row per result, in the
// order given. A run that failed with an error shows "error" as success
// and dashes for its numbers.
func Table(w io.Writer, results []*search.Metrics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, res := range results {
		fmt.Fprintln(tw, strings.Join(row(res), "\t"))
	}

	return tw.Flush()
}

// Markdown writes the same table as Table in GitHub-flavoured Markdown.
func Markdown(w io.Writer, results []*search.Metrics) error {
	var sb strings.Builder
	sb.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat("---|", len(columns)) + "\n")
	for _, res := range results {
		sb.WriteString("| " + strings.Join(row(res), " | ") + " |\n")
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// Paths writes the solution path of every result on its own line.
func Paths(w io.Writer, results []*search.Metrics) error {
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "%s: %s\n", res.Name, FormatPath(res)); err != nil {
			return err
		}
	}

	return nil
}

// FormatPath renders the path of res as space-separated positions.
func FormatPath(res *search.Metrics) string {
	switch {
	case res.Err != nil:
		return "error: " + res.Err.Error()
	case !res.Success:
		return "not found"
	}

	return joinPositions(res.Path)
}

func joinPositions(path []maze.Position) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}

	return strings.Join(parts, " ")
}

func row(res *search.Metrics) []string {
	if res.Err != nil {
		return []string{res.Name, "error", yesNo(res.Optimal), "-", "-", "-", "-"}
	}

	return []string{
		res.Name,
		yesNo(res.Success),
		yesNo(res.Optimal),
		fmt.Sprintf("%.2f", res.Cost),
		fmt.Sprint(res.Expanded),
		fmt.Sprint(res.PeakMemory),
		FormatSeconds(res.Elapsed),
	}
}

// FormatSeconds prints d in seconds with 4 decimals below one second and
// 2 decimals otherwise.
func FormatSeconds(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.4f", d.Seconds())
	}

	return fmt.Sprintf("%.2f", d.Seconds())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
