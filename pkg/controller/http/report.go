package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/service/export"
	"github.com/revisor-lab/revisor/pkg/usecase"
	"github.com/revisor-lab/revisor/pkg/utils/errutil"
	"github.com/revisor-lab/revisor/pkg/utils/safe"
)

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.uc.Reports.ListReports(r.Context()))
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var report model.Report
	if err := decodeBody(r, &report); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Reports.CreateReport(r.Context(), report)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) handlePrefill(w http.ResponseWriter, r *http.Request) {
	execID, err := pathID(r, "executionID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	prefill, err := s.uc.Reports.Prefill(r.Context(), execID)
	if err != nil {
		if errors.Is(err, usecase.ErrExecutionNotFound) {
			writeNotFound(r.Context(), w, "execution")
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, prefill)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	report, ok := s.uc.Reports.GetReport(r.Context(), id)
	if !ok {
		writeNotFound(r.Context(), w, "report")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, report)
}

func (s *Server) handleUpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Reports.GetReport(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "report")
		return
	}

	var patch model.ReportPatch
	if err := decodeBody(r, &patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if err := s.uc.Reports.UpdateReport(r.Context(), id, patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, _ := s.uc.Reports.GetReport(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Reports.GetReport(r.Context(), id); !ok {
		writeNotFound(r.Context(), w, "report")
		return
	}

	s.uc.Reports.DeleteReport(r.Context(), id)
	writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	report, ok := s.uc.Reports.GetReport(r.Context(), id)
	if !ok {
		writeNotFound(r.Context(), w, "report")
		return
	}

	doc, err := s.export.Render(report)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	filename := export.Filename(report, time.Now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	safe.Write(r.Context(), w, []byte(strings.Join(doc.Pages, "\f")))
}

// reportAndFinding parses both path IDs and checks the report exists
func (s *Server) reportAndFinding(w http.ResponseWriter, r *http.Request) (reportID, findingID int, ok bool) {
	reportID, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return 0, 0, false
	}
	findingID, err = pathID(r, "findingID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return 0, 0, false
	}
	if _, found := s.uc.Reports.GetReport(r.Context(), reportID); !found {
		writeNotFound(r.Context(), w, "report")
		return 0, 0, false
	}
	return reportID, findingID, true
}

func (s *Server) handleAddReportFinding(w http.ResponseWriter, r *http.Request) {
	reportID, err := pathID(r, "id")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.uc.Reports.GetReport(r.Context(), reportID); !ok {
		writeNotFound(r.Context(), w, "report")
		return
	}

	var finding model.ReportFinding
	if err := decodeBody(r, &finding); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if err := s.uc.Reports.AddFinding(r.Context(), reportID, finding); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, _ := s.uc.Reports.GetReport(r.Context(), reportID)
	writeJSON(r.Context(), w, http.StatusCreated, updated)
}

func (s *Server) handleUpdateReportFinding(w http.ResponseWriter, r *http.Request) {
	reportID, findingID, ok := s.reportAndFinding(w, r)
	if !ok {
		return
	}

	var patch model.ReportFindingPatch
	if err := decodeBody(r, &patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if err := s.uc.Reports.UpdateFinding(r.Context(), reportID, findingID, patch); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, _ := s.uc.Reports.GetReport(r.Context(), reportID)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleRemoveReportFinding(w http.ResponseWriter, r *http.Request) {
	reportID, findingID, ok := s.reportAndFinding(w, r)
	if !ok {
		return
	}

	s.uc.Reports.RemoveFinding(r.Context(), reportID, findingID)
	updated, _ := s.uc.Reports.GetReport(r.Context(), reportID)
	writeJSON(r.Context(), w, http.StatusOK, updated)
}
