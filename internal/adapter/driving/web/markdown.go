package web

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	// Raw HTML in the notice is dropped by goldmark; the sanitizer then
	// guards the generated markup.
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
	htmlSanitizer.RequireNoFollowOnLinks(true)
	htmlSanitizer.AddTargetBlankToFullyQualifiedLinks(true)
}

// RenderNotice converts the operator notice from markdown to sanitized HTML.
// Returns empty string for empty input.
func RenderNotice(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}
