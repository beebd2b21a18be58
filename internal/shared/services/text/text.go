// Package text cleans citizen-supplied free text and renders outgoing notice
// templates.
package text

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	// Clean strips all markup from s and trims surrounding whitespace.
	Clean(s string) string
	// MarkdownToHTML renders md and sanitizes the result for email bodies.
	MarkdownToHTML(md string) (string, error)
}

type serviceImpl struct {
	md     goldmark.Markdown
	strict *bluemonday.Policy
	ugc    *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Linkify),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)

	return &serviceImpl{
		md:     md,
		strict: bluemonday.StrictPolicy(),
		ugc:    bluemonday.UGCPolicy(),
	}
}

// maxCleanPasses bounds the sanitize/unescape loop for nested entity encoding.
const maxCleanPasses = 5

// Clean sanitizes and decodes entities until the text is stable, so markup
// hidden behind entity encoding is stripped rather than decoded into tags.
// Input still changing after maxCleanPasses is returned escaped.
func (s *serviceImpl) Clean(in string) string {
	out := in
	for i := 0; i < maxCleanPasses; i++ {
		next := html.UnescapeString(s.strict.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	return strings.TrimSpace(s.strict.Sanitize(out))
}

func (s *serviceImpl) MarkdownToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return s.ugc.Sanitize(buf.String()), nil
}
