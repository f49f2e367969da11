package interfaces

import (
	"context"
	"time"

	"certifica_condo/internal/domain/entities"
)

// ICompanyRepository persists companies. Get* return a zero Company when absent.

type ICompanyRepository interface {
	Create(ctx context.Context, c entities.Company) error
	GetByID(ctx context.Context, id string) (entities.Company, error)
	GetForUpdate(ctx context.Context, id string) (entities.Company, error)
	List(ctx context.Context, status entities.ApprovalStatus) ([]entities.Company, error)
	// ListDirectory returns approved, active companies ordered by name.
	ListDirectory(ctx context.Context) ([]entities.Company, error)
	UpdateBalance(ctx context.Context, id string, balance int64) error
	UpdateRegistration(ctx context.Context, id string, status entities.ApprovalStatus, active bool) error
}

// ICondoRepository persists condos. Get* return a zero Condo when absent.

type ICondoRepository interface {
	Create(ctx context.Context, c entities.Condo) error
	GetByID(ctx context.Context, id string) (entities.Condo, error)
	GetForUpdate(ctx context.Context, id string) (entities.Condo, error)
	List(ctx context.Context, status entities.ApprovalStatus) ([]entities.Condo, error)
	// ListDirectory returns approved, active condos ordered by name.
	ListDirectory(ctx context.Context) ([]entities.Condo, error)
	UpdateSubscription(ctx context.Context, id, planID string, expiresAt time.Time) error
	UpdateRegistration(ctx context.Context, id string, status entities.ApprovalStatus, active bool) error
	UpdateRank(ctx context.Context, id string, rank entities.CondoRank) error
}
