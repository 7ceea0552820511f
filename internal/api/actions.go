package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/InfoRubix/filecase-tracking-management-system/internal/archive"
)

// Request payloads shared by the action endpoint and the REST routes.
type (
	fileRefRequest struct {
		RefFile   string `json:"refFile"`
		DeletedBy string `json:"deletedBy"`
	}

	rackRequest struct {
		Rack      string `json:"rack"`
		Kotak     string `json:"kotak"`
		CreatedBy string `json:"createdBy"`
		DeletedBy string `json:"deletedBy"`
	}

	categoryRequest struct {
		Category string `json:"category"`
	}

	typeRequest struct {
		Type string `json:"type"`
	}

	credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
)

// call is one invocation of a named action.
type call struct {
	query url.Values
	body  []byte
	// actor is the session email, empty for open actions.
	actor string
}

func (c call) decode(v any) error {
	if len(c.body) == 0 {
		return nil
	}
	return json.Unmarshal(c.body, v)
}

// by prefers the payload's own actor field over the session email.
func (c call) by(value string) string {
	if value != "" {
		return value
	}
	return c.actor
}

type action struct {
	// label prefixes infrastructure errors, "<label> error: ..."
	label string
	open  bool
	run   func(ctx context.Context, c call) (any, error)
}

func (h *Handler) getActions() map[string]action {
	return map[string]action{
		"searchFile": {label: "Search", open: true, run: func(ctx context.Context, c call) (any, error) {
			searchType, err := archive.ParseSearchType(c.query.Get("searchType"))
			if err != nil {
				return nil, err
			}
			return h.svc.Search(ctx, c.query.Get("searchTerm"), searchType)
		}},
		"getAllFiles": {label: "Get all files", run: func(ctx context.Context, c call) (any, error) {
			return h.svc.AllFiles(ctx)
		}},
		"getRackLookup": {label: "Get rack lookup", run: func(ctx context.Context, c call) (any, error) {
			return h.svc.RackLookup(ctx)
		}},
		"getCategories": {label: "Get categories", run: func(ctx context.Context, c call) (any, error) {
			return h.svc.Categories(ctx)
		}},
		"getTypes": {label: "Get types", run: func(ctx context.Context, c call) (any, error) {
			return h.svc.Types(ctx)
		}},
	}
}

func (h *Handler) postActions() map[string]action {
	return map[string]action{
		"updateFile": {label: "Update file", run: func(ctx context.Context, c call) (any, error) {
			var update archive.FileUpdate
			if err := c.decode(&update); err != nil {
				return nil, err
			}
			update.UpdateBy = c.by(update.UpdateBy)
			return "File updated successfully", h.svc.UpdateFile(ctx, update)
		}},
		"createFile": {label: "Create file", run: func(ctx context.Context, c call) (any, error) {
			var input archive.FileInput
			if err := c.decode(&input); err != nil {
				return nil, err
			}
			input.CreatedBy = c.by(input.CreatedBy)
			_, err := h.svc.CreateFile(ctx, input)
			return "File created successfully", err
		}},
		"deleteFile": {label: "Delete file", run: func(ctx context.Context, c call) (any, error) {
			var req fileRefRequest
			if err := c.decode(&req); err != nil {
				return nil, err
			}
			return "File deleted successfully", h.svc.DeleteFile(ctx, req.RefFile, c.by(req.DeletedBy))
		}},
		"createRack": {label: "Create rack", run: func(ctx context.Context, c call) (any, error) {
			var req rackRequest
			if err := c.decode(&req); err != nil {
				return nil, err
			}
			_, err := h.svc.CreateRack(ctx, req.Rack, c.by(req.CreatedBy))
			return "Rack created successfully", err
		}},
		"deleteRack": {label: "Delete rack", run: func(ctx context.Context, c call) (any, error) {
			var req rackRequest
			if err := c.decode(&req); err != nil {
				return nil, err
			}
			_, err := h.svc.DeleteRack(ctx, req.Rack, c.by(req.DeletedBy))
			return "Rack deleted successfully", err
		}},
		"addKotak": {label: "Add kotak", run: func(ctx context.Context, c call) (any, error) {
			var req rackRequest
			if err := c.decode(&req); err != nil {
				return nil, err
			}
			_, err := h.svc.AddKotak(ctx, req.Rack, req.Kotak, c.by(req.CreatedBy))
			return "Kotak added successfully", err
		}},
		"deleteKotak": {label: "Delete kotak", run: func(ctx context.Context, c call) (any, error) {
			var req rackRequest
			if err := c.decode(&req); err != nil {
				return nil, err
			}
			return "Kotak deleted successfully", h.svc.DeleteKotak(ctx, req.Rack, req.Kotak, c.by(req.DeletedBy))
		}},
		"createBox": {label: "Create box", run: func(ctx context.Context, c call) (any, error) {
			var req rackRequest
			if err := c.decode(&req); err != nil {
				return nil, err
			}
			_, err := h.svc.CreateBox(ctx, req.Kotak, c.by(req.CreatedBy))
			return "Box created successfully", err
		}},
		"deleteBox": {label: "Delete box", run: func(ctx context.Context, c call) (any, error) {
			var req rackRequest
			if err := c.decode(&req); err != nil {
				return nil, err
			}
			removed, err := h.svc.DeleteBox(ctx, req.Kotak, c.by(req.DeletedBy))
			return archive.DeleteBoxMessage(removed), err
		}},
		"getAvailableBoxes": {label: "Get available boxes", run: func(ctx context.Context, c call) (any, error) {
			return h.svc.AvailableBoxes(ctx)
		}},
		"addLog": {label: "Add log", run: func(ctx context.Context, c call) (any, error) {
			var input archive.LogInput
			if err := c.decode(&input); err != nil {
				return nil, err
			}
			input.UpdateBy = c.by(input.UpdateBy)
			return "Log added successfully", h.svc.AddLog(ctx, input)
		}},
		"authenticate": {label: "Authenticate", open: true, run: func(ctx context.Context, c call) (any, error) {
			var creds credentials
			if err := c.decode(&creds); err != nil {
				return nil, err
			}
			return h.admin.Authenticate(creds.Email, creds.Password)
		}},
		"createCategory": {label: "Create category", run: func(ctx context.Context, c call) (any, error) {
			var req categoryRequest
			if err := c.decode(&req); err != nil {
				return nil, err
			}
			_, err := h.svc.CreateCategory(ctx, req.Category)
			return "Category created successfully", err
		}},
		"createType": {label: "Create type", run: func(ctx context.Context, c call) (any, error) {
			var req typeRequest
			if err := c.decode(&req); err != nil {
				return nil, err
			}
			_, err := h.svc.CreateType(ctx, req.Type)
			return "Type created successfully", err
		}},
	}
}

// execGet serves GET /exec?action=... for the read actions.
func (h *Handler) execGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("action")
	if name == "" {
		writeJSON(w, http.StatusOK, Envelope{Success: false, Data: "Missing action parameter"})
		return
	}

	a, ok := h.get[name]
	if !ok {
		writeJSON(w, http.StatusOK, Envelope{Success: false, Data: "Invalid action"})
		return
	}
	h.dispatch(w, r, a, call{query: query})
}

// execPost serves POST /exec with a JSON body naming the action.
func (h *Handler) execPost(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusOK, Envelope{Success: false, Data: "doPost error: " + err.Error()})
		return
	}

	var head struct {
		Action string `json:"action"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &head); err != nil {
			writeJSON(w, http.StatusOK, Envelope{Success: false, Data: "doPost error: " + err.Error()})
			return
		}
	}

	a, ok := h.post[head.Action]
	if !ok {
		writeJSON(w, http.StatusOK, Envelope{Success: false, Data: "Invalid action: " + head.Action})
		return
	}
	h.dispatch(w, r, a, call{body: body})
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request, a action, c call) {
	if !a.open {
		email, ok := sessionEmail(r)
		if !ok {
			reject(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		c.actor = email
	}

	data, err := a.run(r.Context(), c)
	h.respond(w, a.label, data, err)
}
