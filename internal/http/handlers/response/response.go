package response

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func RenderBadRequest(rw http.ResponseWriter, reason string) {
	RenderError(rw, reason, http.StatusBadRequest)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

// Render writes res as JSON. Responses describe in-memory state that changes
// every tick, so they are never cached.
func Render(rw http.ResponseWriter, res interface{}, status int) {
	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	header := rw.Header()
	header.Set("Content-Type", "application/json")
	header.Set("Cache-Control", "no-store")
	rw.WriteHeader(status)
	rw.Write(content)
}
