// Package report renders an AnalysisResponse into a self-contained HTML
// FMEA matrix: one portable file with inline styling and no external
// references.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"
)

import "github.com/helmcode/fmea-ai/pkg/fmea"

//go:embed fmea_matrix.html.tmpl
var matrixTemplate string

var tmpl = template.Must(template.New("fmea_matrix").Parse(matrixTemplate))

// RenderHTML produces the complete HTML report for a finished analysis.
// The caller decides where to store it (typically AnalysisResponse.HTMLReport
// or a file); rendering never mutates the response.
func RenderHTML(resp *fmea.AnalysisResponse) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, resp); err != nil {
		return "", fmt.Errorf("render FMEA report: %w", err)
	}
	return b.String(), nil
}
