package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/InfoRubix/filecase-tracking-management-system/internal/archive"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/log"
)

const maxBodyBytes = 1 << 20

// Handler serves the archive over HTTP.
type Handler struct {
	svc     *archive.Service
	admin   archive.Admin
	session SessionConfig
	logger  log.LoggerService

	get  map[string]action
	post map[string]action
}

func NewHandler(svc *archive.Service, admin archive.Admin, session SessionConfig, logger log.LoggerService) *Handler {
	if logger == nil {
		logger = log.Nop()
	}

	h := &Handler{
		svc:     svc,
		admin:   admin,
		session: session,
		logger:  logger,
	}
	h.get = h.getActions()
	h.post = h.postActions()
	return h
}

// decode reads a JSON body into v. Unreadable bodies are answered with a
// 500 like any other unexpected failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if err == nil || err == io.EOF {
		return true
	}

	h.logger.Warn("Rejected body for %s: %v", r.URL.Path, err)
	reject(w, http.StatusInternalServerError, "Internal server error")
	return false
}

// Auth

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if !h.decode(w, r, &creds) {
		return
	}
	if creds.Email == "" || creds.Password == "" {
		reject(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	session, err := h.admin.Authenticate(creds.Email, creds.Password)
	if err != nil {
		h.logger.Warn("Failed login for %s", creds.Email)
		reject(w, http.StatusUnauthorized, err.Error())
		return
	}

	h.session.start(w, session.Email)
	h.logger.Info("Admin %s logged in", session.Email)
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: session})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.session.end(w)
	writeJSON(w, http.StatusOK, Notice{Success: true, Message: "Logout successful"})
}

type verifyResponse struct {
	Success bool `json:"success"`
	User    struct {
		Email string `json:"email"`
	} `json:"user"`
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	email, ok := sessionEmail(r)
	if !ok {
		reject(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	resp := verifyResponse{Success: true}
	resp.User.Email = email
	writeJSON(w, http.StatusOK, resp)
}

// Files

func (h *Handler) searchFiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	term := query.Get("searchTerm")
	if term == "" {
		term = query.Get("refFile")
	}
	if term == "" {
		reject(w, http.StatusBadRequest, "Search term is required")
		return
	}

	searchType, err := archive.ParseSearchType(query.Get("searchType"))
	if err != nil {
		h.respond(w, "Search", nil, err)
		return
	}

	result, err := h.svc.Search(r.Context(), term, searchType)
	h.respond(w, "Search", result, err)
}

func (h *Handler) allFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.svc.AllFiles(r.Context())
	h.respond(w, "Get all files", files, err)
}

func (h *Handler) createFile(w http.ResponseWriter, r *http.Request) {
	var input archive.FileInput
	if !h.decode(w, r, &input) {
		return
	}
	if input.RefFile == "" || input.ClientName == "" || input.Category == "" || input.Kotak == "" {
		reject(w, http.StatusBadRequest, "Required fields missing: reffile, clientname, category, kotak")
		return
	}

	input.CreatedBy = actor(r.Context())
	_, err := h.svc.CreateFile(r.Context(), input)
	h.respond(w, "Create file", "File created successfully", err)
}

func (h *Handler) updateFile(w http.ResponseWriter, r *http.Request) {
	var update archive.FileUpdate
	if !h.decode(w, r, &update) {
		return
	}
	if update.ID == "" {
		reject(w, http.StatusBadRequest, "File ID is required")
		return
	}

	update.UpdateBy = actor(r.Context())
	err := h.svc.UpdateFile(r.Context(), update)
	h.respond(w, "Update file", "File updated successfully", err)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	var req fileRefRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.RefFile == "" {
		reject(w, http.StatusBadRequest, "Reference file number is required")
		return
	}

	err := h.svc.DeleteFile(r.Context(), req.RefFile, actor(r.Context()))
	h.respond(w, "Delete file", "File deleted successfully", err)
}

// Racks and boxes

func (h *Handler) rackLookup(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.RackLookup(r.Context())
	h.respond(w, "Get rack lookup", entries, err)
}

func (h *Handler) createRack(w http.ResponseWriter, r *http.Request) {
	var req rackRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Rack == "" {
		reject(w, http.StatusBadRequest, "Rack name is required")
		return
	}

	_, err := h.svc.CreateRack(r.Context(), req.Rack, actor(r.Context()))
	h.respond(w, "Create rack", "Rack created successfully", err)
}

func (h *Handler) deleteRack(w http.ResponseWriter, r *http.Request) {
	var req rackRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Rack == "" {
		reject(w, http.StatusBadRequest, "Rack name is required")
		return
	}

	_, err := h.svc.DeleteRack(r.Context(), req.Rack, actor(r.Context()))
	h.respond(w, "Delete rack", "Rack deleted successfully", err)
}

func (h *Handler) addKotak(w http.ResponseWriter, r *http.Request) {
	var req rackRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Rack == "" || req.Kotak == "" {
		reject(w, http.StatusBadRequest, "Rack and kotak names are required")
		return
	}

	_, err := h.svc.AddKotak(r.Context(), req.Rack, req.Kotak, actor(r.Context()))
	h.respond(w, "Add kotak", "Kotak added successfully", err)
}

func (h *Handler) deleteKotak(w http.ResponseWriter, r *http.Request) {
	var req rackRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Rack == "" || req.Kotak == "" {
		reject(w, http.StatusBadRequest, "Rack and kotak names are required")
		return
	}

	err := h.svc.DeleteKotak(r.Context(), req.Rack, req.Kotak, actor(r.Context()))
	h.respond(w, "Delete kotak", "Kotak deleted successfully", err)
}

func (h *Handler) availableBoxes(w http.ResponseWriter, r *http.Request) {
	boxes, err := h.svc.AvailableBoxes(r.Context())
	h.respond(w, "Get available boxes", boxes, err)
}

func (h *Handler) createBox(w http.ResponseWriter, r *http.Request) {
	var req rackRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Kotak == "" {
		reject(w, http.StatusBadRequest, "Box name is required")
		return
	}

	_, err := h.svc.CreateBox(r.Context(), req.Kotak, actor(r.Context()))
	h.respond(w, "Create box", "Box created successfully", err)
}

func (h *Handler) deleteBox(w http.ResponseWriter, r *http.Request) {
	var req rackRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Kotak == "" {
		reject(w, http.StatusBadRequest, "Box name is required")
		return
	}

	removed, err := h.svc.DeleteBox(r.Context(), req.Kotak, actor(r.Context()))
	h.respond(w, "Delete box", archive.DeleteBoxMessage(removed), err)
}

// Lookups and logs

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	h.respond(w, "Get categories", categories, err)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		reject(w, http.StatusBadRequest, "Category is required")
		return
	}

	_, err := h.svc.CreateCategory(r.Context(), req.Category)
	h.respond(w, "Create category", "Category created successfully", err)
}

func (h *Handler) types(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.Types(r.Context())
	h.respond(w, "Get types", types, err)
}

func (h *Handler) createType(w http.ResponseWriter, r *http.Request) {
	var req typeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Type) == "" {
		reject(w, http.StatusBadRequest, "Type is required")
		return
	}

	_, err := h.svc.CreateType(r.Context(), req.Type)
	h.respond(w, "Create type", "Type created successfully", err)
}

func (h *Handler) addLog(w http.ResponseWriter, r *http.Request) {
	var input archive.LogInput
	if !h.decode(w, r, &input) {
		return
	}

	input.UpdateBy = defaultActor(input.UpdateBy, actor(r.Context()))
	err := h.svc.AddLog(r.Context(), input)
	h.respond(w, "Add log", "Log added successfully", err)
}

// health reports whether the record store answers.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Health(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func defaultActor(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
