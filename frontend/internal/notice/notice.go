package notice

import (
	"bytes"
	"html/template"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts the operator-supplied login notice from markdown into
// sanitized HTML. The notice file is plain text editable by operations
// staff, so the output goes through a strict policy before it is trusted
// as template.HTML.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.Strikethrough)),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown text to sanitized HTML.
func (r *Renderer) Render(text string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	safe := r.policy.Sanitize(strings.TrimSpace(buf.String()))
	return template.HTML(safe), nil
}

// RenderFile renders a notice file. A missing path or file yields an empty
// notice rather than an error, so deployments without one just omit the box.
func (r *Renderer) RenderFile(path string) (template.HTML, error) {
	if path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return r.Render(string(raw))
}
