package store

import (
	"context"

	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/domain/model"
)

// ReportStore owns the audit report collection, including each
// report's nested findings list.
type ReportStore struct {
	eng *engine[model.Report, model.ReportPatch]
}

func newReportStore(backend interfaces.Backend, clock interfaces.Clock, seed []model.Report) *ReportStore {
	return &ReportStore{
		eng: newEngine(backend, clock, config[model.Report, model.ReportPatch]{
			name:  "audit_reports",
			seed:  seed,
			id:    func(r *model.Report) int { return r.ID },
			setID: func(r *model.Report, id int) { r.ID = id },
			stamp: func(r *model.Report, clock interfaces.Clock) { r.CreatedAt = clock() },
			clone: model.Report.Clone,
			apply: model.ReportPatch.Apply,
			normalize: func(r *model.Report) error { return r.Normalize() },
		}),
	}
}

func (s *ReportStore) List(ctx context.Context) []model.Report {
	return s.eng.List(ctx)
}

func (s *ReportStore) Get(ctx context.Context, id int) (model.Report, bool) {
	return s.eng.Get(ctx, id)
}

func (s *ReportStore) Add(ctx context.Context, r model.Report) model.Report {
	if r.Findings == nil {
		r.Findings = []model.ReportFinding{}
	}
	return s.eng.Add(ctx, r)
}

func (s *ReportStore) Update(ctx context.Context, id int, patch model.ReportPatch) {
	s.eng.Update(ctx, id, patch)
}

func (s *ReportStore) Remove(ctx context.Context, id int) {
	s.eng.Remove(ctx, id)
}

// AddFinding appends a report finding, assigning the next finding ID
// and sequence number within the report. Sequence numbers keep their
// gaps after deletions.
func (s *ReportStore) AddFinding(ctx context.Context, reportID int, f model.ReportFinding) (model.ReportFinding, bool) {
	var created model.ReportFinding
	found := false
	s.eng.mutate(ctx, reportID, func(r *model.Report) bool {
		maxID, maxNumber := 0, 0
		for _, existing := range r.Findings {
			if existing.ID > maxID {
				maxID = existing.ID
			}
			if existing.Number > maxNumber {
				maxNumber = existing.Number
			}
		}
		f.ID = maxID + 1
		f.Number = maxNumber + 1
		r.Findings = append(r.Findings, f)
		created = f
		found = true
		return true
	})
	return created, found
}

func (s *ReportStore) UpdateFinding(ctx context.Context, reportID, findingID int, patch model.ReportFindingPatch) {
	s.eng.mutate(ctx, reportID, func(r *model.Report) bool {
		for i := range r.Findings {
			if r.Findings[i].ID == findingID {
				patch.Apply(&r.Findings[i])
				return true
			}
		}
		return false
	})
}

func (s *ReportStore) RemoveFinding(ctx context.Context, reportID, findingID int) {
	s.eng.mutate(ctx, reportID, func(r *model.Report) bool {
		for i := range r.Findings {
			if r.Findings[i].ID == findingID {
				r.Findings = append(r.Findings[:i], r.Findings[i+1:]...)
				return true
			}
		}
		return false
	})
}

func (s *ReportStore) ClearAll(ctx context.Context) {
	s.eng.ClearAll(ctx)
}

func (s *ReportStore) Count(ctx context.Context) int {
	return s.eng.Count(ctx)
}
