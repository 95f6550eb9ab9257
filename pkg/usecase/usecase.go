package usecase

import (
	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/store"
)

// UseCases bundles the application services behind the HTTP and CLI
// surfaces.
type UseCases struct {
	AuditTypes *AuditTypeUseCase
	Audits     *AuditUseCase
	Checklists *ChecklistUseCase
	Actions    *ActionUseCase
	Reports    *ReportUseCase
	Auth       *AuthUseCase
}

type Option func(*options)

type options struct {
	clock interfaces.Clock
	auth  AuthConfig
}

// WithClock overrides the time source used by session stamping
func WithClock(clock interfaces.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithAuthConfig overrides the login allow-list
func WithAuthConfig(config AuthConfig) Option {
	return func(o *options) {
		o.auth = config
	}
}

// New wires the use case layer on top of the entity stores
func New(stores *store.Stores, backend interfaces.Backend, opts ...Option) *UseCases {
	o := &options{
		clock: interfaces.RealClock,
		auth:  DefaultAuthConfig(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &UseCases{
		AuditTypes: NewAuditTypeUseCase(stores.AuditTypes),
		Audits:     NewAuditUseCase(stores.Audits),
		Checklists: NewChecklistUseCase(stores.Executions, stores.Audits),
		Actions:    NewActionUseCase(stores.Actions, stores.Executions),
		Reports:    NewReportUseCase(stores.Reports, stores.Executions),
		Auth:       NewAuthUseCase(backend, o.clock, o.auth),
	}
}
