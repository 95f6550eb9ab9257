package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/utils/errutil"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// writeJSON writes a JSON response with proper error handling
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		errutil.Handle(ctx, err, "failed to encode JSON response")
	}
}

// writeNotFound is the uniform 404 body
func writeNotFound(ctx context.Context, w http.ResponseWriter, what string) {
	writeJSON(ctx, w, http.StatusNotFound, errorResponse{Error: what + " not found"})
}

// pathID parses the named URL parameter as a positive integer ID
func pathID(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, goerr.New("invalid ID parameter", goerr.V("param", name), goerr.V("value", raw))
	}
	return id, nil
}

// decodeBody decodes the request body into dst, rejecting unknown
// fields so typos in payloads fail loudly.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return goerr.Wrap(err, "invalid request body")
	}
	return nil
}
