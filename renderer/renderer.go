// Package renderer renders rebalance plans as Markdown and HTML reports.
package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// renderTemplate parses and executes a single Markdown template.
func renderTemplate(templateName, content string, data any) string {
	tmpl, err := template.New(templateName).Parse(content)
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", templateName, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// markdown converts GitHub flavored markdown (tables included) to HTML.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ToHTML converts a Markdown report to HTML.
func ToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("cannot convert report to HTML: %w", err)
	}
	return buf.String(), nil
}
