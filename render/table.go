package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/htrsize/sizing"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("39"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	oddStyle    = cellStyle.Foreground(lipgloss.Color("252"))
	evenStyle   = cellStyle.Foreground(lipgloss.Color("245"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Table writes evals as a bordered terminal table followed by a newline.
// With opts.Styled the header is bold and rows alternate shades.
func Table(w io.Writer, evals []sizing.Evaluation, opts Options) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers(opts)...)
	for _, r := range Rows(evals) {
		t.Row(r.Cells(opts)...)
	}

	if opts.Styled {
		t.BorderStyle(borderStyle).StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenStyle
			default:
				return oddStyle
			}
		})
	} else {
		t.StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle })
	}

	_, err := io.WriteString(w, t.Render()+"\n")

	return err
}
