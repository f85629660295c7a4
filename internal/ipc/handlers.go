package ipc

import (
	"encoding/json"
	stdio "io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/io"
	"github.com/matzehuels/viv/pkg/mappable"
	"github.com/matzehuels/viv/pkg/server"
)

// maxBodySize bounds request bodies; none of ours is more than a few args.
const maxBodySize = 64 << 10

// ActionRequest is the body of an action request.
type ActionRequest struct {
	Args []string `json:"args,omitempty"`
}

// LayoutRequest is the body of a layout change.
type LayoutRequest struct {
	Name string `json:"name"`
}

// ResizeRequest is the body of an output resize.
type ResizeRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Code  errors.Code `json:"code,omitempty"`
	Error string      `json:"error"`
}

type handlers struct {
	host   *server.Server
	logger *log.Logger
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if h.host.Terminated() {
		status = "terminated"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (h *handlers) listWorkspaces(w http.ResponseWriter, r *http.Request) {
	var snap io.Snapshot
	if err := h.host.Do(r.Context(), func() { snap = h.host.Snapshot() }); err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *handlers) getWorkspace(w http.ResponseWriter, r *http.Request) {
	h.respondWorkspace(w, r, nil)
}

func (h *handlers) dispatch(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	b, err := mappable.ParseBinding(chi.URLParam(r, "action"), req.Args)
	if err != nil {
		h.fail(w, err)
		return
	}

	name := chi.URLParam(r, "name")
	h.respondWorkspace(w, r, func() error { return h.host.Dispatch(name, b) })
}

func (h *handlers) nextLayout(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	h.respondWorkspace(w, r, func() error {
		_, err := h.host.NextLayout(name)
		return err
	})
}

func (h *handlers) setLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	name := chi.URLParam(r, "name")
	h.respondWorkspace(w, r, func() error { return h.host.SetLayout(name, req.Name) })
}

func (h *handlers) resizeOutput(w http.ResponseWriter, r *http.Request) {
	var req ResizeRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	name := chi.URLParam(r, "name")

	var (
		snap   io.Snapshot
		runErr error
	)
	err := h.host.Do(r.Context(), func() {
		if runErr = h.host.ResizeOutput(name, req.Width, req.Height); runErr == nil {
			snap = io.Capture(h.host.Output(name).Workspace())
		}
	})
	if err == nil {
		err = runErr
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// respondWorkspace runs op, if any, on the event loop and replies with the
// workspace named in the URL as it is afterwards.
func (h *handlers) respondWorkspace(w http.ResponseWriter, r *http.Request, op func() error) {
	name := chi.URLParam(r, "name")

	var (
		out    io.Workspace
		runErr error
	)
	err := h.host.Do(r.Context(), func() {
		if op != nil {
			if runErr = op(); runErr != nil {
				return
			}
		}
		ws, err := h.host.Workspace(name)
		if err != nil {
			runErr = err
			return
		}
		out = io.CaptureWorkspace(ws)
	})
	if err == nil {
		err = runErr
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", "err", err)
	}
	writeJSON(w, status, ErrorResponse{Code: errors.GetCode(err), Error: errors.UserMessage(err)})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound, errors.ErrCodeWorkspaceNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidAction, errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNoSpareWorkspace:
		return http.StatusConflict
	case errors.ErrCodeTerminated:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// decodeBody decodes an optional JSON body into v.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(stdio.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && err != stdio.EOF {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
