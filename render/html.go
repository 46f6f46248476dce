package render

import (
	"html/template"
	"io"

	"github.com/katalvlaran/htrsize/sizing"
)

var htmlTemplate = template.Must(template.New("heaters").Parse(`<style>
table {
    font-family: arial, sans-serif;
    border-collapse: collapse;
    width: 100%;
}

td, th {
    border: 1px solid #dddddd;
    text-align: left;
    padding: 8px;
}

tr:nth-child(even) {
    background-color: #dddddd;
}
</style>
<h2>Possible Heaters</h2>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
`))

// HTML writes evals as a styled table fragment under a "Possible Heaters"
// heading. Cell text is escaped.
func HTML(w io.Writer, evals []sizing.Evaluation, opts Options) error {
	rows := Rows(evals)
	body := make([][]string, len(rows))
	for i, r := range rows {
		body[i] = r.Cells(opts)
	}

	return htmlTemplate.Execute(w, struct {
		Headers []string
		Rows    [][]string
	}{Headers(opts), body})
}
