package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/samber/mo"

	"job-board-web/internal/format"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"salaryRange":   format.SalaryRange,
		"formatDate":    format.Date,
		"openPositions": format.OpenPositions,
		"optionValue":   optionValue,
		"selected":      selected,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// optionValue renders an optional number back into an input.
func optionValue(v any) string {
	switch o := v.(type) {
	case mo.Option[int]:
		if n, ok := o.Get(); ok {
			return fmt.Sprint(n)
		}
	case mo.Option[float64]:
		if n, ok := o.Get(); ok {
			return fmt.Sprint(n)
		}
	}
	return ""
}

func selected(current mo.Option[int], id int) bool {
	n, ok := current.Get()
	return ok && n == id
}
