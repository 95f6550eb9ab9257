package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/domain/types"
	"github.com/revisor-lab/revisor/pkg/kv/memory"
	"github.com/revisor-lab/revisor/pkg/store"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string { return &s }

func TestFirstRunSeeding(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()

	stores := store.New(backend)
	gt.Number(t, stores.AuditTypes.Count(ctx)).Equal(6)
	gt.Number(t, stores.Audits.Count(ctx)).Equal(2)
	gt.Number(t, stores.Executions.Count(ctx)).Equal(2)
	gt.Number(t, stores.Actions.Count(ctx)).Equal(3)
	gt.Number(t, stores.Reports.Count(ctx)).Equal(2)

	// A second bundle over the same backend reads the persisted data
	// instead of reseeding.
	again := store.New(backend)
	gt.Number(t, again.AuditTypes.Count(ctx)).Equal(6)

	first, ok := again.Audits.Get(ctx, 1)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, first.Name).Equal("Information Security Audit")
	gt.Value(t, first.StartDate.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))).Equal(true)
}

func TestSeedingSkippedAfterClear(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()

	stores := store.New(backend)
	for _, a := range stores.Audits.List(ctx) {
		stores.Audits.Remove(ctx, a.ID)
	}
	gt.Number(t, stores.Audits.Count(ctx)).Equal(0)

	// Marker is still set, so a fresh session stays empty rather than
	// reseeding over the user's deletions.
	again := store.New(backend)
	gt.Number(t, again.Audits.Count(ctx)).Equal(0)
}

func TestIDAssignment(t *testing.T) {
	ctx := context.Background()
	stores := store.New(memory.New())

	created := addType(ctx, stores, "Compliance")
	gt.Number(t, created.ID).Equal(7)

	// Deleting the highest record frees its ID for the next insert.
	stores.AuditTypes.Remove(ctx, 7)
	again := addType(ctx, stores, "Compliance")
	gt.Number(t, again.ID).Equal(7)

	// Deleting a middle record leaves a gap; the next ID is still
	// max+1.
	stores.AuditTypes.Remove(ctx, 3)
	next := addType(ctx, stores, "Vendor Management")
	gt.Number(t, next.ID).Equal(8)
}

func addType(ctx context.Context, stores *store.Stores, name string) model.AuditType {
	return stores.AuditTypes.Add(ctx, model.AuditType{
		Name:   name,
		Color:  "#123456",
		Active: true,
	})
}

func TestShallowMergePatch(t *testing.T) {
	ctx := context.Background()
	stores := store.New(memory.New())

	before, ok := stores.AuditTypes.Get(ctx, 1)
	gt.Value(t, ok).Equal(true)

	stores.AuditTypes.Update(ctx, 1, model.AuditTypePatch{Name: strPtr("Cybersecurity")})

	after, ok := stores.AuditTypes.Get(ctx, 1)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, after.Name).Equal("Cybersecurity")
	gt.Value(t, after.Color).Equal(before.Color)
	gt.Value(t, after.Description).Equal(before.Description)
	gt.Value(t, after.Active).Equal(before.Active)
	gt.Value(t, after.CreatedAt.Equal(before.CreatedAt)).Equal(true)
}

func TestSilentNoOps(t *testing.T) {
	ctx := context.Background()
	stores := store.New(memory.New())

	stores.AuditTypes.Update(ctx, 999, model.AuditTypePatch{Name: strPtr("ghost")})
	stores.AuditTypes.Remove(ctx, 999)
	stores.Executions.UpdateItem(ctx, 999, 1, model.ChecklistItemPatch{})
	stores.Executions.RemoveFinding(ctx, 1, 999)

	gt.Number(t, stores.AuditTypes.Count(ctx)).Equal(6)
	gt.Number(t, stores.Executions.Count(ctx)).Equal(2)
}

func TestRoundTripThroughBackend(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	now := time.Date(2025, time.June, 1, 12, 30, 0, 0, time.UTC)

	stores := store.New(backend, store.WithSeeds(store.Seeds{}), store.WithClock(fixedClock(now)))
	created := stores.Actions.Add(ctx, model.CorrectiveAction{
		Title:    "Patch authentication service",
		Priority: types.ActionPriorityHigh,
		Status:   types.ActionStatusPending,
		DueDate:  time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
	})
	gt.Number(t, created.ID).Equal(1)
	gt.Value(t, created.CreatedAt.Equal(now)).Equal(true)

	// Timestamps survive the JSON round trip through the backend.
	reopened := store.New(backend, store.WithSeeds(store.Seeds{}))
	loaded, ok := reopened.Actions.Get(ctx, 1)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, loaded.CreatedAt.Equal(now)).Equal(true)
	gt.Value(t, loaded.DueDate.Equal(created.DueDate)).Equal(true)
}

func TestMalformedRecordsDropped(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()

	// One valid record, one non-object element and one record that
	// fails date reconstruction (zero CreatedAt).
	blob := `[
		{"id":1,"name":"Security","color":"#1976d2","active":true,"createdAt":"2024-01-01T00:00:00Z"},
		"garbage",
		{"id":2,"name":"Broken","color":"#000000","active":true}
	]`
	gt.NoError(t, backend.Put(ctx, "audit_types_data", []byte(blob)))
	gt.NoError(t, backend.Put(ctx, "audit_types_initialized", []byte("true")))

	stores := store.New(backend)
	listed := stores.AuditTypes.List(ctx)
	gt.Number(t, len(listed)).Equal(1)
	gt.Value(t, listed[0].Name).Equal("Security")
}

func TestDeletedIDsLedger(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	stores := store.New(backend)

	stores.Executions.Remove(ctx, 1)
	gt.Number(t, stores.Executions.Count(ctx)).Equal(1)

	// A defaults restore honors the ledger.
	stores.Executions.RestoreDefaults(ctx)
	listed := stores.Executions.List(ctx)
	gt.Number(t, len(listed)).Equal(1)
	gt.Number(t, listed[0].ID).Equal(2)
}

func TestLedgerRecoveryAfterDataLoss(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	stores := store.New(backend)
	stores.Executions.Remove(ctx, 1)

	// Simulate losing the data blob while marker and ledger survive.
	gt.NoError(t, backend.Delete(ctx, "checklist_executions_data"))

	reopened := store.New(backend)
	listed := reopened.Executions.List(ctx)
	gt.Number(t, len(listed)).Equal(1)
	gt.Number(t, listed[0].ID).Equal(2)

	// Non-ledger stores stay empty in the same situation.
	gt.NoError(t, backend.Delete(ctx, "audits_data"))
	again := store.New(backend)
	gt.Number(t, again.Audits.Count(ctx)).Equal(0)
}

func TestClearAllAndReseed(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	stores := store.New(backend)

	stores.AuditTypes.ClearAll(ctx)
	stores.Executions.ClearAll(ctx)
	gt.Number(t, stores.AuditTypes.Count(ctx)).Equal(0)
	gt.Number(t, stores.Executions.Count(ctx)).Equal(0)

	// ClearAll erases the first-run marker, so a fresh session seeds
	// again from scratch.
	reopened := store.New(backend)
	gt.Number(t, reopened.AuditTypes.Count(ctx)).Equal(6)
	gt.Number(t, reopened.Executions.Count(ctx)).Equal(2)
}

func TestNestedItemOperations(t *testing.T) {
	ctx := context.Background()
	stores := store.New(memory.New())

	exec, ok := stores.Executions.Get(ctx, 1)
	gt.Value(t, ok).Equal(true)
	gt.Number(t, len(exec.Items)).Equal(2)

	added, ok := stores.Executions.AddItem(ctx, 1, model.ChecklistItem{Description: "Review backup policy"})
	gt.Value(t, ok).Equal(true)
	gt.Number(t, added.ID).Equal(3)

	stores.Executions.ToggleCompliance(ctx, 1, added.ID)
	exec, _ = stores.Executions.Get(ctx, 1)
	for _, item := range exec.Items {
		if item.ID == added.ID {
			gt.Value(t, item.Compliant).Equal(true)
		}
	}

	stores.Executions.RemoveItem(ctx, 1, added.ID)
	exec, _ = stores.Executions.Get(ctx, 1)
	gt.Number(t, len(exec.Items)).Equal(2)
}

func TestNestedFindingNumbering(t *testing.T) {
	ctx := context.Background()
	stores := store.New(memory.New())

	added, ok := stores.Executions.AddFinding(ctx, 1, model.Finding{
		Description: "Unpatched server detected",
		Severity:    types.SeverityHigh,
	})
	gt.Value(t, ok).Equal(true)
	gt.Number(t, added.ID).Equal(2)
	gt.Number(t, added.Number).Equal(2)

	// Removing the highest finding frees both its ID and number.
	stores.Executions.RemoveFinding(ctx, 1, added.ID)
	again, ok := stores.Executions.AddFinding(ctx, 1, model.Finding{
		Description: "Stale firewall rules",
		Severity:    types.SeverityMedium,
	})
	gt.Value(t, ok).Equal(true)
	gt.Number(t, again.ID).Equal(2)
	gt.Number(t, again.Number).Equal(2)

	// Removing a middle finding leaves a gap: numbering is max+1,
	// never gap-filling.
	third, _ := stores.Executions.AddFinding(ctx, 1, model.Finding{
		Description: "Expired TLS certificates",
		Severity:    types.SeverityHigh,
	})
	gt.Number(t, third.Number).Equal(3)
	stores.Executions.RemoveFinding(ctx, 1, again.ID)
	fourth, _ := stores.Executions.AddFinding(ctx, 1, model.Finding{
		Description: "Shared admin accounts",
		Severity:    types.SeverityMedium,
	})
	gt.Number(t, fourth.ID).Equal(4)
	gt.Number(t, fourth.Number).Equal(4)
}

func TestReportFindings(t *testing.T) {
	ctx := context.Background()
	stores := store.New(memory.New())

	report, ok := stores.Reports.Get(ctx, 1)
	gt.Value(t, ok).Equal(true)
	gt.Number(t, len(report.Findings)).Equal(2)

	added, ok := stores.Reports.AddFinding(ctx, 1, model.ReportFinding{
		Description: "Access reviews are overdue",
		Severity:    types.ReportSeverityMajor,
	})
	gt.Value(t, ok).Equal(true)
	gt.Number(t, added.ID).Equal(3)
	gt.Number(t, added.Number).Equal(3)

	stores.Reports.UpdateFinding(ctx, 1, added.ID, model.ReportFindingPatch{
		Description: strPtr("Quarterly access reviews are overdue"),
	})
	report, _ = stores.Reports.Get(ctx, 1)
	found := false
	for _, f := range report.Findings {
		if f.ID == added.ID {
			found = true
			gt.Value(t, f.Description).Equal("Quarterly access reviews are overdue")
			gt.Value(t, f.Severity).Equal(types.ReportSeverityMajor)
		}
	}
	gt.Value(t, found).Equal(true)
}

func TestToggleActive(t *testing.T) {
	ctx := context.Background()
	stores := store.New(memory.New())

	before, _ := stores.AuditTypes.Get(ctx, 6)
	gt.Value(t, before.Active).Equal(false)

	stores.AuditTypes.ToggleActive(ctx, 6)
	after, _ := stores.AuditTypes.Get(ctx, 6)
	gt.Value(t, after.Active).Equal(true)

	active := stores.AuditTypes.ListActive(ctx)
	gt.Number(t, len(active)).Equal(6)
}
