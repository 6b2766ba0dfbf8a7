// Package display renders hands, classification results and tally reports for the
// terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/handclass/internal/tally"
	"github.com/lox/handclass/poker"
)

// Printer writes styled output to a terminal
type Printer struct {
	w io.Writer

	headerStyle  lipgloss.Style
	redCardStyle lipgloss.Style
	cardStyle    lipgloss.Style
	strongStyle  lipgloss.Style
	madeStyle    lipgloss.Style
	weakStyle    lipgloss.Style
	detailStyle  lipgloss.Style
	errorStyle   lipgloss.Style
	percentStyle lipgloss.Style
}

// New creates a printer writing to w. When color is false all styling is dropped.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return newPrinter(w, r)
}

func newPrinter(w io.Writer, r *lipgloss.Renderer) *Printer {
	return &Printer{
		w:            w,
		headerStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		redCardStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		cardStyle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		strongStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700")),
		madeStyle:    r.NewStyle().Foreground(lipgloss.Color("10")),
		weakStyle:    r.NewStyle().Foreground(lipgloss.Color("12")),
		detailStyle:  r.NewStyle().Foreground(lipgloss.Color("#626262")),
		errorStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		percentStyle: r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Hand renders cards with suit symbols, red suits in red
func (p *Printer) Hand(h poker.Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		style := p.cardStyle
		if c.Suit.IsRed() {
			style = p.redCardStyle
		}
		parts[i] = style.Render(c.Symbol())
	}
	return strings.Join(parts, " ")
}

func (p *Printer) categoryStyle(c poker.Category) lipgloss.Style {
	switch {
	case c >= poker.FullHouse:
		return p.strongStyle
	case c >= poker.Straight:
		return p.madeStyle
	default:
		return p.weakStyle
	}
}

// Result prints a hand followed by its classification
func (p *Printer) Result(h poker.Hand, r poker.Result) {
	detail := strings.TrimSpace(strings.TrimPrefix(r.String(), r.Category.String()))
	line := fmt.Sprintf("%s  %s", p.Hand(h), p.categoryStyle(r.Category).Render(r.Category.String()))
	if detail != "" {
		line += "  " + p.detailStyle.Render(detail)
	}
	fmt.Fprintln(p.w, line)
}

// Error prints a failure for one input
func (p *Printer) Error(input string, err error) {
	fmt.Fprintf(p.w, "%s  %s\n", input, p.errorStyle.Render(err.Error()))
}

// Report prints tally counts and frequencies, strongest category first. Cells are
// padded to their column width before styling so escape codes never shift a column.
func (p *Printer) Report(r *tally.Report) {
	fmt.Fprintf(p.w, "%s %d hands, %d workers, seed %d\n",
		p.headerStyle.Render("tally"), r.Hands, r.Workers, r.Seed)

	rows := r.Rows()
	header := []string{"category", "count", "freq", "±"}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{
			row.Name,
			fmt.Sprintf("%d", row.Count),
			fmt.Sprintf("%.4f%%", row.Frequency*100),
			fmt.Sprintf("%.4f%%", r.Margin95(row.Category)*100),
		}
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, line := range cells {
		for i, cell := range line {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	p.reportLine(widths, header, func(int) lipgloss.Style { return p.headerStyle })
	for i, row := range rows {
		p.reportLine(widths, cells[i], func(col int) lipgloss.Style {
			switch col {
			case 0:
				return p.categoryStyle(row.Category)
			case 2:
				return p.percentStyle
			default:
				return p.detailStyle
			}
		})
	}

	if rate := r.Rate(); rate > 0 {
		fmt.Fprintf(p.w, "%s\n", p.detailStyle.Render(fmt.Sprintf("%s (%.0f hands/sec)", r.Elapsed, rate)))
	}
}

// reportLine writes one table row. The first column is left aligned, the rest right.
func (p *Printer) reportLine(widths []int, cells []string, style func(col int) lipgloss.Style) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		align := lipgloss.Right
		if i == 0 {
			align = lipgloss.Left
		}
		parts[i] = style(i).Width(widths[i]).Align(align).Render(cell)
	}
	fmt.Fprintln(p.w, strings.Join(parts, "  "))
}
