package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/store"
)

// AuditTypeUseCase validates audit type edits before they reach the
// store. Validation failures never reach the collection; the store
// itself stays validation-free.
type AuditTypeUseCase struct {
	types *store.AuditTypeStore
}

func NewAuditTypeUseCase(types *store.AuditTypeStore) *AuditTypeUseCase {
	return &AuditTypeUseCase{types: types}
}

func (uc *AuditTypeUseCase) CreateType(ctx context.Context, name, description, color string, active bool) (model.AuditType, error) {
	if name == "" {
		return model.AuditType{}, goerr.New("audit type name is required")
	}
	if !model.ValidColorCode(color) {
		return model.AuditType{}, goerr.New("invalid color code", goerr.V("color", color))
	}

	created := uc.types.Add(ctx, model.AuditType{
		Name:        name,
		Description: description,
		Color:       color,
		Active:      active,
	})
	return created, nil
}

func (uc *AuditTypeUseCase) UpdateType(ctx context.Context, id int, patch model.AuditTypePatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return goerr.New("audit type name is required")
	}
	if patch.Color != nil && !model.ValidColorCode(*patch.Color) {
		return goerr.New("invalid color code", goerr.V("color", *patch.Color))
	}

	uc.types.Update(ctx, id, patch)
	return nil
}

func (uc *AuditTypeUseCase) DeleteType(ctx context.Context, id int) {
	uc.types.Remove(ctx, id)
}

func (uc *AuditTypeUseCase) ToggleActive(ctx context.Context, id int) {
	uc.types.ToggleActive(ctx, id)
}

func (uc *AuditTypeUseCase) GetType(ctx context.Context, id int) (model.AuditType, bool) {
	return uc.types.Get(ctx, id)
}

func (uc *AuditTypeUseCase) ListTypes(ctx context.Context) []model.AuditType {
	return uc.types.List(ctx)
}

// ListActiveTypes returns the types offered when planning a new audit
func (uc *AuditTypeUseCase) ListActiveTypes(ctx context.Context) []model.AuditType {
	return uc.types.ListActive(ctx)
}
