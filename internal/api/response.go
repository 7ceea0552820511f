package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/InfoRubix/filecase-tracking-management-system/internal/archive"
)

// Envelope is the response shape of every archive action.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Notice is a message-only response. Requests refused before reaching the
// archive, e.g. for missing fields or no session, get one with Success false.
type Notice struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func reject(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Notice{Success: false, Message: message})
}

// outcome converts the result of an archive call into an envelope. Domain
// failures carry their own message; anything else is prefixed with the
// action name, e.g. "Create file error: ...".
func outcome(action string, data any, err error) Envelope {
	if err == nil {
		return Envelope{Success: true, Data: data}
	}
	if archiveErr, ok := archive.AsError(err); ok {
		return Envelope{Success: false, Data: archiveErr.Payload()}
	}
	return Envelope{Success: false, Data: fmt.Sprintf("%s error: %v", action, err)}
}

func (h *Handler) respond(w http.ResponseWriter, action string, data any, err error) {
	if err != nil {
		if _, ok := archive.AsError(err); !ok {
			h.logger.Error("%s failed: %v", action, err)
		}
	}
	writeJSON(w, http.StatusOK, outcome(action, data, err))
}
