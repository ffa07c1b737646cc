package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/27piyush27/folio/internal/metrics"
	"github.com/27piyush27/folio/internal/walker"
)

// Handler serves the live page, its assets, and the content APIs.
type Handler struct {
	gen     *Generator
	assets  map[string]walker.Asset
	search  []SearchEntry
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewHandler indexes assets by file name for certificate downloads.
func NewHandler(gen *Generator, assets []walker.Asset, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		gen:     gen,
		assets:  walker.ByName(assets),
		search:  BuildSearchIndex(gen.Profile),
		metrics: m,
		logger:  logger,
	}
}

// RegisterRoutes mounts the page and content endpoints.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.handlePage)
	r.Get("/style.css", staticText("text/css; charset=utf-8", cssContent))
	r.Get("/script.js", staticText("text/javascript; charset=utf-8", jsContent))
	r.Get("/api/content", h.handleContent)
	r.Get("/api/content/{section}", h.handleSection)
	r.Get("/api/search", h.handleSearch)
	r.Get("/"+CertificateDir+"/{file}", h.handleCertificate)
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.gen.WritePage(&buf, true); err != nil {
		h.logger.Error("rendering page", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to render page"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *Handler) handleContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.gen.Profile)
}

func (h *Handler) handleSection(w http.ResponseWriter, r *http.Request) {
	section, err := h.gen.Profile.Section(chi.URLParam(r, "section"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, section)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}
	results := Search(h.search, q)
	if results == nil {
		results = []SearchEntry{}
	}
	writeJSON(w, http.StatusOK, results)
}

// handleCertificate sends a certificate as an attachment. Only files the
// profile lists are reachable, whatever else the assets directory holds.
func (h *Handler) handleCertificate(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	if _, ok := h.gen.Profile.Certificate(file); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "certificate not found"})
		return
	}
	asset, ok := h.assets[file]
	if !ok {
		h.logger.Warn("certificate listed but missing from assets", zap.String("file", file))
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "certificate not found"})
		return
	}

	f, err := os.Open(asset.Path)
	if err != nil {
		h.logger.Error("opening certificate", zap.String("file", file), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read certificate"})
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read certificate"})
		return
	}

	w.Header().Set("Content-Type", asset.MediaType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": asset.Name}))
	w.Header().Set("ETag", fmt.Sprintf("%q", asset.ContentHash))
	h.metrics.CertificateDownloads.WithLabelValues(file).Inc()
	http.ServeContent(w, r, asset.Name, info.ModTime(), f)
}

func staticText(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
