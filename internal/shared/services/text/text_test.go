package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	svc := NewService()

	tests := []struct {
		in   string
		want string
	}{
		{"Pothole on Main St", "Pothole on Main St"},
		{"  <b>Broken</b> lamp  ", "Broken lamp"},
		{"<script>alert(1)</script>Overflowing drain", "Overflowing drain"},
		{"Road & Transport", "Road & Transport"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Clean(tt.in))
		})
	}
}

func TestClean_EntityEncodedMarkup(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"encoded script", "&lt;script&gt;alert(1)&lt;/script&gt;", ""},
		{"encoded tag around text", "&lt;b&gt;pothole&lt;/b&gt;", "pothole"},
		{"double encoded tag", "&amp;lt;img src=x onerror=alert(1)&amp;gt;Blocked drain", "Blocked drain"},
		{"entity for ampersand", "Road &amp; Transport", "Road & Transport"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Clean(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "<")
		})
	}
}

func TestMarkdownToHTML(t *testing.T) {
	svc := NewService()

	out, err := svc.MarkdownToHTML("Your complaint **Pothole** was resolved.\n\n<script>x()</script>")
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>Pothole</strong>")
	assert.NotContains(t, out, "<script>")
}
