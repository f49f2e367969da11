package postgres

import (
	"context"
	"database/sql"

	"certifica_condo/internal/domain/entities"
)

const tenderColumns = `id, condo_id, title, description, service_type, status, cost, budget, winner_company_id, created_at, updated_at`

type tenderRepo struct{ q querier }

func scanTender(row scanner) (entities.Tender, error) {
	var t entities.Tender
	var status string
	var budget sql.NullFloat64
	var winner sql.NullString
	if err := row.Scan(&t.ID, &t.CondoID, &t.Title, &t.Description, &t.ServiceType, &status, &t.Cost, &budget, &winner, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return entities.Tender{}, err
	}
	t.Status = entities.TenderStatus(status)
	t.Budget = floatPtr(budget)
	t.WinnerCompanyID = winner.String
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r tenderRepo) Create(ctx context.Context, t entities.Tender) error {
	_, err := r.q.ExecContext(ctx, `
		insert into tenders(id, condo_id, title, description, service_type, status, cost, budget, winner_company_id, created_at, updated_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`, t.ID, t.CondoID, t.Title, t.Description, t.ServiceType, string(t.Status), t.Cost, nullFloat(t.Budget), nullString(t.WinnerCompanyID), t.CreatedAt, t.UpdatedAt)
	return mapErr(err)
}

func (r tenderRepo) GetByID(ctx context.Context, id string) (entities.Tender, error) {
	return r.get(ctx, `select `+tenderColumns+` from tenders where id=$1`, id)
}

func (r tenderRepo) GetForUpdate(ctx context.Context, id string) (entities.Tender, error) {
	return r.get(ctx, `select `+tenderColumns+` from tenders where id=$1 for update`, id)
}

func (r tenderRepo) GetForShare(ctx context.Context, id string) (entities.Tender, error) {
	return r.get(ctx, `select `+tenderColumns+` from tenders where id=$1 for share`, id)
}

func (r tenderRepo) get(ctx context.Context, query, id string) (entities.Tender, error) {
	t, err := scanTender(r.q.QueryRowContext(ctx, query, id))
	if noRows(err) {
		return entities.Tender{}, nil
	}
	return t, err
}

// Update writes status, winner and descriptive fields; the check constraint
// rejects a winner on a tender that is not concluida.
func (r tenderRepo) Update(ctx context.Context, t entities.Tender) error {
	_, err := r.q.ExecContext(ctx, `
		update tenders
		set title=$2, description=$3, service_type=$4, status=$5, budget=$6, winner_company_id=$7, updated_at=$8
		where id=$1
	`, t.ID, t.Title, t.Description, t.ServiceType, string(t.Status), nullFloat(t.Budget), nullString(t.WinnerCompanyID), t.UpdatedAt)
	return mapErr(err)
}

func (r tenderRepo) ListByStatus(ctx context.Context, status entities.TenderStatus) ([]entities.Tender, error) {
	return r.list(ctx, `select `+tenderColumns+` from tenders where status=$1 order by created_at desc, id desc`, string(status))
}

func (r tenderRepo) ListByCondo(ctx context.Context, condoID string) ([]entities.Tender, error) {
	return r.list(ctx, `select `+tenderColumns+` from tenders where condo_id=$1 order by created_at desc, id desc`, condoID)
}

func (r tenderRepo) list(ctx context.Context, query string, arg any) ([]entities.Tender, error) {
	rows, err := r.q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entities.Tender, 0)
	for rows.Next() {
		t, err := scanTender(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

const candidacyColumns = `id, tender_id, company_id, message, proposed_price, status, created_at`

type candidacyRepo struct{ q querier }

func scanCandidacy(row scanner) (entities.Candidacy, error) {
	var c entities.Candidacy
	var status string
	var price sql.NullFloat64
	if err := row.Scan(&c.ID, &c.TenderID, &c.CompanyID, &c.Message, &price, &status, &c.CreatedAt); err != nil {
		return entities.Candidacy{}, err
	}
	c.Status = entities.CandidacyStatus(status)
	c.ProposedPrice = floatPtr(price)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

func (r candidacyRepo) Create(ctx context.Context, c entities.Candidacy) error {
	_, err := r.q.ExecContext(ctx, `
		insert into candidacies(id, tender_id, company_id, message, proposed_price, status, created_at)
		values ($1,$2,$3,$4,$5,$6,$7)
	`, c.ID, c.TenderID, c.CompanyID, c.Message, nullFloat(c.ProposedPrice), string(c.Status), c.CreatedAt)
	return mapErr(err)
}

func (r candidacyRepo) GetByID(ctx context.Context, id string) (entities.Candidacy, error) {
	c, err := scanCandidacy(r.q.QueryRowContext(ctx, `select `+candidacyColumns+` from candidacies where id=$1`, id))
	if noRows(err) {
		return entities.Candidacy{}, nil
	}
	return c, err
}

func (r candidacyRepo) GetByTenderAndCompany(ctx context.Context, tenderID, companyID string) (entities.Candidacy, error) {
	c, err := scanCandidacy(r.q.QueryRowContext(ctx,
		`select `+candidacyColumns+` from candidacies where tender_id=$1 and company_id=$2`, tenderID, companyID))
	if noRows(err) {
		return entities.Candidacy{}, nil
	}
	return c, err
}

func (r candidacyRepo) ListByTender(ctx context.Context, tenderID string) ([]entities.Candidacy, error) {
	return r.list(ctx, `select `+candidacyColumns+` from candidacies where tender_id=$1 order by created_at asc, id asc`, tenderID)
}

func (r candidacyRepo) ListByCompany(ctx context.Context, companyID string) ([]entities.Candidacy, error) {
	return r.list(ctx, `select `+candidacyColumns+` from candidacies where company_id=$1 order by created_at asc, id asc`, companyID)
}

func (r candidacyRepo) list(ctx context.Context, query string, arg any) ([]entities.Candidacy, error) {
	rows, err := r.q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entities.Candidacy, 0)
	for rows.Next() {
		c, err := scanCandidacy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r candidacyRepo) UpdateStatus(ctx context.Context, id string, status entities.CandidacyStatus) error {
	_, err := r.q.ExecContext(ctx, `update candidacies set status=$2 where id=$1`, id, string(status))
	return err
}

const ratingColumns = `id, tender_id, company_id, condo_id, score, comment, created_at`

type ratingRepo struct{ q querier }

func scanRating(row scanner) (entities.Rating, error) {
	var rt entities.Rating
	if err := row.Scan(&rt.ID, &rt.TenderID, &rt.CompanyID, &rt.CondoID, &rt.Score, &rt.Comment, &rt.CreatedAt); err != nil {
		return entities.Rating{}, err
	}
	rt.CreatedAt = rt.CreatedAt.UTC()
	return rt, nil
}

func (r ratingRepo) Create(ctx context.Context, rt entities.Rating) error {
	_, err := r.q.ExecContext(ctx, `
		insert into ratings(id, tender_id, company_id, condo_id, score, comment, created_at)
		values ($1,$2,$3,$4,$5,$6,$7)
	`, rt.ID, rt.TenderID, rt.CompanyID, rt.CondoID, rt.Score, rt.Comment, rt.CreatedAt)
	return mapErr(err)
}

func (r ratingRepo) GetByTender(ctx context.Context, tenderID string) (entities.Rating, error) {
	rt, err := scanRating(r.q.QueryRowContext(ctx, `select `+ratingColumns+` from ratings where tender_id=$1`, tenderID))
	if noRows(err) {
		return entities.Rating{}, nil
	}
	return rt, err
}

func (r ratingRepo) ListByCompany(ctx context.Context, companyID string) ([]entities.Rating, error) {
	rows, err := r.q.QueryContext(ctx, `select `+ratingColumns+` from ratings where company_id=$1 order by created_at asc, id asc`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entities.Rating, 0)
	for rows.Next() {
		rt, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
