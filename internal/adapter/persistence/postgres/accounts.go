package postgres

import (
	"context"
	"database/sql"
	"time"

	"certifica_condo/internal/domain/entities"
)

const companyColumns = `id, name, cnpj, email, balance, active, status, created_at`

type companyRepo struct{ q querier }

func scanCompany(row scanner) (entities.Company, error) {
	var c entities.Company
	var status string
	if err := row.Scan(&c.ID, &c.Name, &c.CNPJ, &c.Email, &c.Balance, &c.Active, &status, &c.CreatedAt); err != nil {
		return entities.Company{}, err
	}
	c.Status = entities.ApprovalStatus(status)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

func (r companyRepo) Create(ctx context.Context, c entities.Company) error {
	_, err := r.q.ExecContext(ctx, `
		insert into companies(id, name, cnpj, email, balance, active, status, created_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8)
	`, c.ID, c.Name, c.CNPJ, c.Email, c.Balance, c.Active, string(c.Status), c.CreatedAt)
	return mapErr(err)
}

func (r companyRepo) GetByID(ctx context.Context, id string) (entities.Company, error) {
	return r.get(ctx, `select `+companyColumns+` from companies where id=$1`, id)
}

func (r companyRepo) GetForUpdate(ctx context.Context, id string) (entities.Company, error) {
	return r.get(ctx, `select `+companyColumns+` from companies where id=$1 for update`, id)
}

func (r companyRepo) get(ctx context.Context, query, id string) (entities.Company, error) {
	c, err := scanCompany(r.q.QueryRowContext(ctx, query, id))
	if noRows(err) {
		return entities.Company{}, nil
	}
	return c, err
}

func (r companyRepo) List(ctx context.Context, status entities.ApprovalStatus) ([]entities.Company, error) {
	rows, err := r.q.QueryContext(ctx, `
		select `+companyColumns+` from companies
		where ($1 = '' or status = $1)
		order by created_at asc, id asc
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entities.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r companyRepo) ListDirectory(ctx context.Context) ([]entities.Company, error) {
	rows, err := r.q.QueryContext(ctx, `
		select `+companyColumns+` from companies
		where status = $1 and active
		order by name asc, id asc
	`, string(entities.ApprovalStatusAprovado))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entities.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r companyRepo) UpdateBalance(ctx context.Context, id string, balance int64) error {
	_, err := r.q.ExecContext(ctx, `update companies set balance=$2 where id=$1`, id, balance)
	return err
}

func (r companyRepo) UpdateRegistration(ctx context.Context, id string, status entities.ApprovalStatus, active bool) error {
	_, err := r.q.ExecContext(ctx, `update companies set status=$2, active=$3 where id=$1`, id, string(status), active)
	return err
}

const condoColumns = `id, name, cnpj, email, active, status, rank, plan_id, plan_expires_at, created_at`

type condoRepo struct{ q querier }

func scanCondo(row scanner) (entities.Condo, error) {
	var c entities.Condo
	var status string
	var rank, planID sql.NullString
	var expires sql.NullTime
	if err := row.Scan(&c.ID, &c.Name, &c.CNPJ, &c.Email, &c.Active, &status, &rank, &planID, &expires, &c.CreatedAt); err != nil {
		return entities.Condo{}, err
	}
	c.Status = entities.ApprovalStatus(status)
	c.Rank = entities.CondoRank(rank.String)
	c.PlanID = planID.String
	c.PlanExpiresAt = timePtr(expires)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

func (r condoRepo) Create(ctx context.Context, c entities.Condo) error {
	var expires sql.NullTime
	if c.PlanExpiresAt != nil {
		expires = sql.NullTime{Time: *c.PlanExpiresAt, Valid: true}
	}
	_, err := r.q.ExecContext(ctx, `
		insert into condos(id, name, cnpj, email, active, status, rank, plan_id, plan_expires_at, created_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, c.ID, c.Name, c.CNPJ, c.Email, c.Active, string(c.Status), nullString(string(c.Rank)), nullString(c.PlanID), expires, c.CreatedAt)
	return mapErr(err)
}

func (r condoRepo) GetByID(ctx context.Context, id string) (entities.Condo, error) {
	return r.get(ctx, `select `+condoColumns+` from condos where id=$1`, id)
}

func (r condoRepo) GetForUpdate(ctx context.Context, id string) (entities.Condo, error) {
	return r.get(ctx, `select `+condoColumns+` from condos where id=$1 for update`, id)
}

func (r condoRepo) get(ctx context.Context, query, id string) (entities.Condo, error) {
	c, err := scanCondo(r.q.QueryRowContext(ctx, query, id))
	if noRows(err) {
		return entities.Condo{}, nil
	}
	return c, err
}

func (r condoRepo) List(ctx context.Context, status entities.ApprovalStatus) ([]entities.Condo, error) {
	rows, err := r.q.QueryContext(ctx, `
		select `+condoColumns+` from condos
		where ($1 = '' or status = $1)
		order by created_at asc, id asc
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entities.Condo, 0)
	for rows.Next() {
		c, err := scanCondo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r condoRepo) ListDirectory(ctx context.Context) ([]entities.Condo, error) {
	rows, err := r.q.QueryContext(ctx, `
		select `+condoColumns+` from condos
		where status = $1 and active
		order by name asc, id asc
	`, string(entities.ApprovalStatusAprovado))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entities.Condo, 0)
	for rows.Next() {
		c, err := scanCondo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r condoRepo) UpdateRank(ctx context.Context, id string, rank entities.CondoRank) error {
	_, err := r.q.ExecContext(ctx, `update condos set rank=$2 where id=$1`, id, nullString(string(rank)))
	return err
}

func (r condoRepo) UpdateSubscription(ctx context.Context, id, planID string, expiresAt time.Time) error {
	_, err := r.q.ExecContext(ctx, `update condos set plan_id=$2, plan_expires_at=$3 where id=$1`, id, planID, expiresAt)
	return err
}

func (r condoRepo) UpdateRegistration(ctx context.Context, id string, status entities.ApprovalStatus, active bool) error {
	_, err := r.q.ExecContext(ctx, `update condos set status=$2, active=$3 where id=$1`, id, string(status), active)
	return err
}
