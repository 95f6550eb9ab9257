package http

import (
	"net/http"

	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/utils/errutil"
)

func (s *Server) handleListExecutions(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.uc.Checklists.ListExecutions(r.Context()))
}

func (s *Server) handleCreateExecution(w http.ResponseWriter, r *http.Request) {
	var exec model.ChecklistExecution
	if err := decodeBody(r, &exec); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Checklists.CreateExecution(r.Context(), exec)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) handleRestoreExecutions(w http.ResponseWriter, r *http.Request) {
	s.uc.Checklists.RestoreDefaults(r.Context())
	writeJSON(r.Context(), w, http.StatusOK, s.uc.Checklists.ListExecutions(r.Context()))
}

func (s *Server) handleGetExecution(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	exec, ok := s.uc.Checklists.GetExecution(r.Context(), id)
	if !ok {
		writeNotFound(r.Context(), w, "execution")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, exec)
}

func (s *Server) handleUpdateExecution(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Checklists.GetExecution(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "execution")
		return
	}

	var patch model.ChecklistExecutionPatch
	if err := decodeBody(r, &patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if err := s.uc.Checklists.UpdateExecution(r.Context(), id, patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, _ := s.uc.Checklists.GetExecution(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleDeleteExecution(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Checklists.GetExecution(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "execution")
		return
	}

	s.uc.Checklists.DeleteExecution(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

// execAndItem parses both path IDs and checks the execution exists
func (s *Server) execAndItem(w http.ResponseWriter, r *http.Request, itemParam string) (execID, itemID int, ok bool) {
	execID, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return 0, 0, false
	}
	itemID, err = pathID(r, itemParam)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return 0, 0, false
	}
	if _, found := s.uc.Checklists.GetExecution(r.Context(), execID); !found {
		writeNotFound(r.Context(), w, "execution")
		return 0, 0, false
	}
	return execID, itemID, true
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	execID, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Checklists.GetExecution(r.Context(), execID); !ok {
		writeNotFound(r.Context(), w, "execution")
		return
	}

	var item model.ChecklistItem
	if err := decodeBody(r, &item); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if err := s.uc.Checklists.AddItem(r.Context(), execID, item); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, _ := s.uc.Checklists.GetExecution(r.Context(), execID)
	writeJSON(r.Context(), w, http.StatusCreated, updated)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	execID, itemID, ok := s.execAndItem(w, r, "itemID")
	if !ok {
		return
	}

	var patch model.ChecklistItemPatch
	if err := decodeBody(r, &patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	s.uc.Checklists.UpdateItem(r.Context(), execID, itemID, patch)

	updated, _ := s.uc.Checklists.GetExecution(r.Context(), execID)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	execID, itemID, ok := s.execAndItem(w, r, "itemID")
	if !ok {
		return
	}

	s.uc.Checklists.RemoveItem(r.Context(), execID, itemID)
	updated, _ := s.uc.Checklists.GetExecution(r.Context(), execID)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleToggleItem(w http.ResponseWriter, r *http.Request) {
	execID, itemID, ok := s.execAndItem(w, r, "itemID")
	if !ok {
		return
	}

	s.uc.Checklists.ToggleCompliance(r.Context(), execID, itemID)
	updated, _ := s.uc.Checklists.GetExecution(r.Context(), execID)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleAddExecutionFinding(w http.ResponseWriter, r *http.Request) {
	execID, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Checklists.GetExecution(r.Context(), execID); !ok {
		writeNotFound(r.Context(), w, "execution")
		return
	}

	var finding model.Finding
	if err := decodeBody(r, &finding); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if err := s.uc.Checklists.AddFinding(r.Context(), execID, finding); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, _ := s.uc.Checklists.GetExecution(r.Context(), execID)
	writeJSON(r.Context(), w, http.StatusCreated, updated)
}

func (s *Server) handleUpdateExecutionFinding(w http.ResponseWriter, r *http.Request) {
	execID, findingID, ok := s.execAndItem(w, r, "findingID")
	if !ok {
		return
	}

	var patch model.FindingPatch
	if err := decodeBody(r, &patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if err := s.uc.Checklists.UpdateFinding(r.Context(), execID, findingID, patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, _ := s.uc.Checklists.GetExecution(r.Context(), execID)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleRemoveExecutionFinding(w http.ResponseWriter, r *http.Request) {
	execID, findingID, ok := s.execAndItem(w, r, "findingID")
	if !ok {
		return
	}

	s.uc.Checklists.RemoveFinding(r.Context(), execID, findingID)
	updated, _ := s.uc.Checklists.GetExecution(r.Context(), execID)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}
