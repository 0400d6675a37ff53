package chi

import (
	"encoding/json"
	"net/http"

	gochi "github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/docnav/internal/usecase/controller"
	"github.com/kailas-cloud/docnav/internal/usecase/session"
)

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	code, err := queryLocale(r, "lang")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	sess, err := s.sessions.Create(code)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	var resp SessionResponse
	err = s.sessions.Do(sess.ID(), func(v *session.View) error {
		resp = sessionToResponse(sess.ID(), v)
		return nil
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+sess.ID())
	writeJSON(w, http.StatusCreated, resp)
}

// GetSession handles GET /api/v1/sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(*session.View) error { return nil })
}

// DeleteSession handles DELETE /api/v1/sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(gochi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OpenSession handles POST /api/v1/sessions/{id}/open.
func (s *Server) OpenSession(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(v *session.View) error {
		v.Controller.Open()
		return nil
	})
}

// CloseSession handles POST /api/v1/sessions/{id}/close.
func (s *Server) CloseSession(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(v *session.View) error {
		v.Controller.Close()
		return nil
	})
}

// SetSessionQuery handles PUT /api/v1/sessions/{id}/query.
func (s *Server) SetSessionQuery(w http.ResponseWriter, r *http.Request) {
	var req SetQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.withSession(w, r, func(v *session.View) error {
		return v.Controller.SetQuery(req.Query)
	})
}

// SelectResult handles POST /api/v1/sessions/{id}/select.
func (s *Server) SelectResult(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Index == nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "index is required")
		return
	}

	s.withSession(w, r, func(v *session.View) error {
		_, err := v.Controller.Select(*req.Index)
		return err
	})
}

// DispatchKey handles POST /api/v1/sessions/{id}/keys.
func (s *Server) DispatchKey(w http.ResponseWriter, r *http.Request) {
	var ev controller.KeyEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if ev.Key == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "key is required")
		return
	}

	var handled bool
	resp, ok := s.doSession(w, r, func(v *session.View) error {
		handled = v.Hub.Dispatch(ev)
		return nil
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, KeyEventResponse{Handled: handled, Session: resp})
}

// withSession runs fn on the session named in the URL and answers with its snapshot.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(v *session.View) error) {
	if resp, ok := s.doSession(w, r, fn); ok {
		writeJSON(w, http.StatusOK, resp)
	}
}

// doSession runs fn under the session lock. On failure the error is already written.
func (s *Server) doSession(
	w http.ResponseWriter,
	r *http.Request,
	fn func(v *session.View) error,
) (SessionResponse, bool) {
	id := gochi.URLParam(r, "id")
	var view *session.View
	var resp SessionResponse
	err := s.sessions.Do(id, func(v *session.View) error {
		view = v
		if err := fn(v); err != nil {
			return err
		}
		resp = sessionToResponse(id, v)
		return nil
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return SessionResponse{}, false
	}
	// NavigatedTo is filled in once fn returns.
	resp.NavigateTo = view.NavigatedTo
	return resp, true
}

func sessionToResponse(id string, v *session.View) SessionResponse {
	snap := v.Controller.Snapshot()
	return SessionResponse{
		ID:      id,
		Locale:  v.Controller.Locale().String(),
		State:   string(snap.State),
		Query:   snap.Query,
		Status:  snap.Status,
		Results: documentsToItems(snap.Results),
	}
}
