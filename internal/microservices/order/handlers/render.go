package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"order-desk/internal/common/logger"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

// renderPage executes the template into a buffer first so a failure never
// leaves a half written page.
func renderPage(w http.ResponseWriter, r *http.Request, lg *logger.Logger, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromContext(r.Context(), lg).Error("template_render_failed", err, map[string]any{"template": name})
		writeProblem(w, http.StatusInternalServerError, "render_error", "page could not be rendered")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem writes a simplified RFC 7807 problem document.
func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	resp := map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	}
	writeJSON(w, code, resp)
}
