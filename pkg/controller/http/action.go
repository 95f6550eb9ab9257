package http

import (
	"net/http"

	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/utils/errutil"
)

func (s *Server) handleListActions(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.uc.Actions.ListActions(r.Context()))
}

func (s *Server) handleAvailableFindings(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.uc.Actions.AvailableFindings(r.Context()))
}

func (s *Server) handleCreateAction(w http.ResponseWriter, r *http.Request) {
	var action model.CorrectiveAction
	if err := decodeBody(r, &action); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Actions.CreateAction(r.Context(), action)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) handleGetAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	action, ok := s.uc.Actions.GetAction(r.Context(), id)
	if !ok {
		writeNotFound(r.Context(), w, "corrective action")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, action)
}

func (s *Server) handleUpdateAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Actions.GetAction(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "corrective action")
		return
	}

	var patch model.CorrectiveActionPatch
	if err := decodeBody(r, &patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if err := s.uc.Actions.UpdateAction(r.Context(), id, patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, _ := s.uc.Actions.GetAction(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleDeleteAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Actions.GetAction(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "corrective action")
		return
	}

	s.uc.Actions.DeleteAction(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}
