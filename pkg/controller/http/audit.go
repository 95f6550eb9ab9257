package http

import (
	"net/http"

	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/utils/errutil"
)

func (s *Server) handleListAudits(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.uc.Audits.ListAudits(r.Context()))
}

func (s *Server) handleCreateAudit(w http.ResponseWriter, r *http.Request) {
	var audit model.Audit
	if err := decodeBody(r, &audit); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Audits.CreateAudit(r.Context(), audit)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	audit, ok := s.uc.Audits.GetAudit(r.Context(), id)
	if !ok {
		writeNotFound(r.Context(), w, "audit")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, audit)
}

func (s *Server) handleUpdateAudit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Audits.GetAudit(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "audit")
		return
	}

	var patch model.AuditPatch
	if err := decodeBody(r, &patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if err := s.uc.Audits.UpdateAudit(r.Context(), id, patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, _ := s.uc.Audits.GetAudit(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleDeleteAudit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Audits.GetAudit(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "audit")
		return
	}

	s.uc.Audits.DeleteAudit(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}
