package interfaces

import (
	"context"

	"certifica_condo/internal/domain/entities"
)

// ITenderRepository persists tenders.
//
// GetForUpdate locks the row against every other writer; GetForShare only
// blocks writers, so concurrent candidacies on one tender do not serialize.

type ITenderRepository interface {
	Create(ctx context.Context, t entities.Tender) error
	GetByID(ctx context.Context, id string) (entities.Tender, error)
	GetForUpdate(ctx context.Context, id string) (entities.Tender, error)
	GetForShare(ctx context.Context, id string) (entities.Tender, error)
	Update(ctx context.Context, t entities.Tender) error
	ListByStatus(ctx context.Context, status entities.TenderStatus) ([]entities.Tender, error)
	ListByCondo(ctx context.Context, condoID string) ([]entities.Tender, error)
}

// ICandidacyRepository persists candidacies. Create returns ErrDuplicateKey when
// the (tender, company) pair already has one.

type ICandidacyRepository interface {
	Create(ctx context.Context, c entities.Candidacy) error
	GetByID(ctx context.Context, id string) (entities.Candidacy, error)
	GetByTenderAndCompany(ctx context.Context, tenderID, companyID string) (entities.Candidacy, error)
	ListByTender(ctx context.Context, tenderID string) ([]entities.Candidacy, error)
	ListByCompany(ctx context.Context, companyID string) ([]entities.Candidacy, error)
	UpdateStatus(ctx context.Context, id string, status entities.CandidacyStatus) error
}

// IRatingRepository persists ratings. Create returns ErrDuplicateKey when the
// tender already has one.

type IRatingRepository interface {
	Create(ctx context.Context, r entities.Rating) error
	GetByTender(ctx context.Context, tenderID string) (entities.Rating, error)
	ListByCompany(ctx context.Context, companyID string) ([]entities.Rating, error)
}
