// Package render turns order records into email subjects and bodies.
// Rendering is pure: no I/O, no mutation of inputs, and missing optional
// fields are omitted from the output rather than shown as empty sections.
package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

// Message is the rendered form of a notification: a subject line, a
// self-contained HTML document and an equivalent plain-text body carrying the
// same facts in the same order.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Renderer renders order notifications. The zero value is ready to use.
type Renderer struct {
	// IncludeQR embeds a QR code of the order number in confirmation emails,
	// scanned at pickup/delivery handoff.
	IncludeQR bool
}

func executeHTML(tmpl *htmltemplate.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func executeText(tmpl *texttemplate.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
