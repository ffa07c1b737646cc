package walker

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates files (relative path -> content) under a temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

var certTree = map[string]string{
	"udacity-genai-certificate.avif":       "\x00\x00\x00 ftypavif",
	"intel-certificate.avif":               "intel",
	"internships/internpe-certificate.png": "\x89PNG",
	"notes.txt":                            "not an asset",
	".git/objects/ab.png":                  "ignored",
	"node_modules/pkg/logo.png":            "ignored",
}

func TestWalk_IncludeGlobs(t *testing.T) {
	root := writeTree(t, certTree)

	assets, err := Walk(Config{RootDir: root, Include: []string{"**/*.avif", "**/*.png"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{
		"intel-certificate.avif",
		"internships/internpe-certificate.png",
		"udacity-genai-certificate.avif",
	}
	if len(assets) != len(want) {
		t.Fatalf("got %d assets, want %d: %+v", len(assets), len(want), assets)
	}
	for i, a := range assets {
		if a.RelPath != want[i] {
			t.Errorf("asset[%d] = %q, want %q", i, a.RelPath, want[i])
		}
	}
}

func TestWalk_AssetFields(t *testing.T) {
	root := writeTree(t, certTree)

	assets, err := Walk(Config{RootDir: root, Include: []string{"**/*.png"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(assets))
	}
	a := assets[0]
	if a.Name != "internpe-certificate.png" {
		t.Errorf("Name = %q", a.Name)
	}
	if a.MediaType != "image/png" {
		t.Errorf("MediaType = %q", a.MediaType)
	}
	if a.Size != 4 {
		t.Errorf("Size = %d, want 4", a.Size)
	}
	if len(a.ContentHash) != 64 {
		t.Errorf("ContentHash has length %d, expected 64", len(a.ContentHash))
	}
	if !filepath.IsAbs(a.Path) {
		t.Errorf("Path %q is not absolute", a.Path)
	}
}

func TestWalk_Exclude(t *testing.T) {
	root := writeTree(t, certTree)

	assets, err := Walk(Config{RootDir: root, Include: []string{"**/*.avif"}, Exclude: []string{"intel-*"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(assets) != 1 || assets[0].Name != "udacity-genai-certificate.avif" {
		t.Errorf("unexpected assets %+v", assets)
	}
}

func TestWalk_SkipsLargeFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"big.png": "0123456789", "small.png": "01"})

	assets, err := Walk(Config{RootDir: root, MaxFileSize: 5})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(assets) != 1 || assets[0].Name != "small.png" {
		t.Errorf("unexpected assets %+v", assets)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	assets, err := Walk(Config{RootDir: filepath.Join(t.TempDir(), "absent")})
	if err != nil {
		t.Fatalf("missing root should not fail: %v", err)
	}
	if len(assets) != 0 {
		t.Errorf("expected no assets, got %d", len(assets))
	}
}

func TestWalk_ContentHashConsistency(t *testing.T) {
	root := writeTree(t, map[string]string{"a.png": "same", "b/a.png": "same"})

	assets, err := Walk(Config{RootDir: root})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	if assets[0].ContentHash != assets[1].ContentHash {
		t.Error("identical content produced different hashes")
	}

	idx := ByName(assets)
	if got := idx["a.png"].RelPath; got != "a.png" {
		t.Errorf("ByName picked %q, want the shallower a.png", got)
	}
}

func TestMediaType(t *testing.T) {
	tests := map[string]string{
		"cert.avif":   "image/avif",
		"cert.PNG":    "image/png",
		"cert.jpeg":   "image/jpeg",
		"cert.pdf":    "application/pdf",
		"cert.nosuch": "application/octet-stream",
	}
	for name, want := range tests {
		if got := MediaType(name); got != want {
			t.Errorf("MediaType(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestMatchesInclude_Empty(t *testing.T) {
	if !MatchesInclude("anything.png", nil) {
		t.Error("empty include should match everything")
	}
}

func TestMatchesExclude_Empty(t *testing.T) {
	if MatchesExclude("anything.png", nil) {
		t.Error("empty exclude should match nothing")
	}
}

func TestMatchesInclude_DoubleStarPattern(t *testing.T) {
	if !MatchesInclude("certs/2023/intel.avif", []string{"**/*.avif"}) {
		t.Error("**/*.avif should match nested avif")
	}
	if !MatchesInclude("intel.avif", []string{"certs/*.avif", "*.avif"}) {
		t.Error("*.avif should match a root file")
	}
	if MatchesInclude("certs/intel.png", []string{"**/*.avif"}) {
		t.Error("**/*.avif should not match png")
	}
}
