package http

import (
	"net/http"

	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/utils/errutil"
)

type createAuditTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Active      bool   `json:"active"`
}

func (s *Server) handleListAuditTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.uc.AuditTypes.ListTypes(r.Context()))
}

func (s *Server) handleListActiveAuditTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.uc.AuditTypes.ListActiveTypes(r.Context()))
}

func (s *Server) handleCreateAuditType(w http.ResponseWriter, r *http.Request) {
	var req createAuditTypeRequest
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.AuditTypes.CreateType(r.Context(), req.Name, req.Description, req.Color, req.Active)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) handleGetAuditType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	auditType, ok := s.uc.AuditTypes.GetType(r.Context(), id)
	if !ok {
		writeNotFound(r.Context(), w, "audit type")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, auditType)
}

func (s *Server) handleUpdateAuditType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.AuditTypes.GetType(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "audit type")
		return
	}

	var patch model.AuditTypePatch
	if err := decodeBody(r, &patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if err := s.uc.AuditTypes.UpdateType(r.Context(), id, patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, _ := s.uc.AuditTypes.GetType(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleDeleteAuditType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.AuditTypes.GetType(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "audit type")
		return
	}

	s.uc.AuditTypes.DeleteType(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleToggleAuditType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.AuditTypes.GetType(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "audit type")
		return
	}

	s.uc.AuditTypes.ToggleActive(r.Context(), id)
	updated, _ := s.uc.AuditTypes.GetType(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}
