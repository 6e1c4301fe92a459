package handlers

import (
	"encoding/json"
	"net/http"

	"store-locator-service/internal/domain"
	"store-locator-service/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.Logger().Errorw("encode failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"status": "error", "error": msg})
}

// writeDomainError maps the error taxonomy onto HTTP status codes:
// InvalidInput -> 400, NotFound -> 404, Upstream -> 502, anything
// else -> 500. Upstream details are logged, not leaked to callers.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		writeError(w, r, http.StatusBadRequest, err.Error())
	case domain.KindNotFound:
		writeError(w, r, http.StatusNotFound, err.Error())
	case domain.KindUpstream:
		obs.Logger().Errorw("upstream failure",
			"req_id", obs.RequestIDFrom(r.Context()), "path", r.URL.Path, "err", err)
		writeError(w, r, http.StatusBadGateway, "upstream service failure")
	default:
		obs.Logger().Errorw("request failed",
			"req_id", obs.RequestIDFrom(r.Context()), "path", r.URL.Path, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
