package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tbeaudouin05/stripe-mirror/api/app"
	"github.com/tbeaudouin05/stripe-mirror/api/config"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

type handler struct {
	svc app.Service
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps the gateway sentinels onto HTTP statuses. Anything
// unrecognized is a collaborator failure.
func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, gateway.ErrUnsupportedKind):
		status = http.StatusBadRequest
	case errors.Is(err, gateway.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gateway.ErrConfiguration):
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"connected": h.svc.TestConnection(),
	})
}

func (h handler) stats(w http.ResponseWriter, _ *http.Request) {
	st := h.svc.Store()
	body := map[string]any{
		"counts":      st.Stats(),
		"api_version": st.APIVersion(),
		"livemode":    st.Livemode(),
	}
	if ts, ok := st.LastSync(); ok {
		body["last_sync"] = ts
	}
	writeJSON(w, http.StatusOK, body)
}

func (h handler) state(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Store().Snapshot())
}

func (h handler) configView(w http.ResponseWriter, _ *http.Request) {
	if config.AppConfig == nil {
		writeJSON(w, http.StatusOK, map[string]string{})
		return
	}
	writeJSON(w, http.StatusOK, config.AppConfig.Redacted())
}

func (h handler) syncAll(w http.ResponseWriter, _ *http.Request) {
	counts, err := h.svc.SyncAll()
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"synced": counts})
}

func (h handler) clear(w http.ResponseWriter, _ *http.Request) {
	h.svc.Store().ClearAll()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (h handler) fetch(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	id := chi.URLParam(r, "id")
	obj, err := h.svc.Fetch(kind, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

func (h handler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := gateway.SearchParams{Page: q.Get("page")}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		params.Limit = limit
	}
	page, err := h.svc.Search(q.Get("kind"), q.Get("query"), params)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
