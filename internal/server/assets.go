package server

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"
)

//go:embed assets
var assetsFS embed.FS

// PageData fills the index template.
type PageData struct {
	CSS       string
	JS        string
	Notation  string
	Format    string
	Notations []string
	Formats   []string
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	return m
}

func minifyAsset(m *minify.M, mediatype, name string) (string, error) {
	raw, err := assetsFS.ReadFile("assets/" + name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	out, err := m.String(mediatype, string(raw))
	if err != nil {
		return "", fmt.Errorf("minify %s: %w", name, err)
	}
	return out, nil
}

// BuildIndex renders and minifies the index page. CSS and JS are inlined.
func BuildIndex(data PageData) ([]byte, error) {
	m := newMinifier()

	var err error
	if data.CSS, err = minifyAsset(m, "text/css", "style.css"); err != nil {
		return nil, err
	}
	if data.JS, err = minifyAsset(m, "text/javascript", "script.js"); err != nil {
		return nil, err
	}

	raw, err := assetsFS.ReadFile("assets/index.html.tpl")
	if err != nil {
		return nil, fmt.Errorf("read index template: %w", err)
	}
	tmpl, err := template.New("index").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute index template: %w", err)
	}

	out, err := m.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minify index: %w", err)
	}
	return out, nil
}

// BuildFavicon returns the minified SVG icon.
func BuildFavicon() ([]byte, error) {
	out, err := minifyAsset(newMinifier(), "image/svg+xml", "favicon.svg")
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
