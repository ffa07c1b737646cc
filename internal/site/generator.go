// Package site renders the portfolio page from a profile, either on demand
// for the HTTP server or once into a static directory.
package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/27piyush27/folio/internal/content"
	"github.com/27piyush27/folio/internal/progress"
	"github.com/27piyush27/folio/internal/walker"
)

// CertificateDir is the path prefix certificates are served and written under.
const CertificateDir = "certificates"

// Generator renders a profile into HTML.
type Generator struct {
	Profile *content.Profile
	md      goldmark.Markdown
	tmpl    *template.Template
}

// pageData holds the values passed to the page template.
type pageData struct {
	*content.Profile
	Bio      template.HTML
	Live     bool
	CertBase string
}

// NewGenerator parses the page template and prepares the markdown renderer.
func NewGenerator(p *content.Profile) (*Generator, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Generator{Profile: p, md: md, tmpl: tmpl}, nil
}

// RenderMarkdown converts a markdown fragment to HTML.
func (g *Generator) RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// WritePage renders the page. live selects the server build, which talks
// to the APIs; the static build leaves the interactive widgets out.
func (g *Generator) WritePage(w io.Writer, live bool) error {
	bio, err := g.RenderMarkdown(g.Profile.Bio)
	if err != nil {
		return err
	}
	data := pageData{
		Profile:  g.Profile,
		Bio:      bio,
		Live:     live,
		CertBase: CertificateDir + "/",
	}
	return g.tmpl.Execute(w, data)
}

// Render writes the static site into outDir: index.html, the stylesheet,
// the script, content.json, search-index.json and every certificate found
// among assets. It returns the number of files written.
func (g *Generator) Render(outDir string, assets []walker.Asset, reporter progress.Reporter) (int, error) {
	if err := os.MkdirAll(filepath.Join(outDir, CertificateDir), 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	byName := walker.ByName(assets)
	var certs []walker.Asset
	for _, file := range g.Profile.CertificateFiles() {
		if a, ok := byName[file]; ok {
			certs = append(certs, a)
		}
	}

	reporter.Start(5 + len(certs))
	written := 0
	step := func(msg string) {
		written++
		reporter.Update(written, msg)
	}

	var page bytes.Buffer
	if err := g.WritePage(&page, false); err != nil {
		return written, fmt.Errorf("rendering page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), page.Bytes(), 0o644); err != nil {
		return written, err
	}
	step("index.html")

	if err := os.WriteFile(filepath.Join(outDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return written, err
	}
	step("style.css")

	if err := os.WriteFile(filepath.Join(outDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return written, err
	}
	step("script.js")

	profileJSON, err := json.MarshalIndent(g.Profile, "", "  ")
	if err != nil {
		return written, err
	}
	if err := os.WriteFile(filepath.Join(outDir, "content.json"), profileJSON, 0o644); err != nil {
		return written, err
	}
	step("content.json")

	if err := WriteSearchIndex(BuildSearchIndex(g.Profile), filepath.Join(outDir, "search-index.json")); err != nil {
		return written, err
	}
	step("search-index.json")

	for _, a := range certs {
		if err := copyFile(a.Path, filepath.Join(outDir, CertificateDir, a.Name)); err != nil {
			return written, fmt.Errorf("copying %s: %w", a.Name, err)
		}
		step(a.Name)
	}

	reporter.Finish()
	return written, nil
}

// MissingCertificates lists profile certificate files with no matching asset.
func MissingCertificates(p *content.Profile, assets []walker.Asset) []string {
	byName := walker.ByName(assets)
	var missing []string
	for _, file := range p.CertificateFiles() {
		if _, ok := byName[file]; !ok {
			missing = append(missing, file)
		}
	}
	return missing
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
