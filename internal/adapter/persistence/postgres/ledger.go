package postgres

import (
	"context"
	"database/sql"

	"certifica_condo/internal/domain/entities"
)

const coinTxColumns = `id, company_id, quantity, description, payment_id, status, created_at`

type coinTxRepo struct{ q querier }

func scanCoinTx(row scanner) (entities.CoinTransaction, error) {
	var t entities.CoinTransaction
	var paymentID sql.NullString
	var status string
	if err := row.Scan(&t.ID, &t.CompanyID, &t.Quantity, &t.Description, &paymentID, &status, &t.CreatedAt); err != nil {
		return entities.CoinTransaction{}, err
	}
	t.PaymentID = paymentID.String
	t.Status = entities.TransactionStatus(status)
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

func (r coinTxRepo) Append(ctx context.Context, t entities.CoinTransaction) error {
	_, err := r.q.ExecContext(ctx, `
		insert into coin_transactions(id, company_id, quantity, description, payment_id, status, created_at)
		values ($1,$2,$3,$4,$5,$6,$7)
	`, t.ID, t.CompanyID, t.Quantity, t.Description, nullString(t.PaymentID), string(t.Status), t.CreatedAt)
	return mapErr(err)
}

func (r coinTxRepo) GetByPaymentID(ctx context.Context, paymentID string) (entities.CoinTransaction, error) {
	if paymentID == "" {
		return entities.CoinTransaction{}, nil
	}
	t, err := scanCoinTx(r.q.QueryRowContext(ctx, `select `+coinTxColumns+` from coin_transactions where payment_id=$1`, paymentID))
	if noRows(err) {
		return entities.CoinTransaction{}, nil
	}
	return t, err
}

func (r coinTxRepo) ListByCompany(ctx context.Context, companyID string) ([]entities.CoinTransaction, error) {
	rows, err := r.q.QueryContext(ctx, `select `+coinTxColumns+` from coin_transactions where company_id=$1 order by created_at asc, id asc`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entities.CoinTransaction, 0)
	for rows.Next() {
		t, err := scanCoinTx(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r coinTxRepo) SumByCompany(ctx context.Context, companyID string) (int64, error) {
	var total int64
	err := r.q.QueryRowContext(ctx, `select coalesce(sum(quantity), 0) from coin_transactions where company_id=$1`, companyID).Scan(&total)
	return total, err
}

const planTxColumns = `id, condo_id, plan_id, amount, payment_id, status, created_at`

type planTxRepo struct{ q querier }

func scanPlanTx(row scanner) (entities.PlanTransaction, error) {
	var t entities.PlanTransaction
	var paymentID sql.NullString
	var status string
	if err := row.Scan(&t.ID, &t.CondoID, &t.PlanID, &t.Amount, &paymentID, &status, &t.CreatedAt); err != nil {
		return entities.PlanTransaction{}, err
	}
	t.PaymentID = paymentID.String
	t.Status = entities.TransactionStatus(status)
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

func (r planTxRepo) Append(ctx context.Context, t entities.PlanTransaction) error {
	_, err := r.q.ExecContext(ctx, `
		insert into plan_transactions(id, condo_id, plan_id, amount, payment_id, status, created_at)
		values ($1,$2,$3,$4,$5,$6,$7)
	`, t.ID, t.CondoID, t.PlanID, t.Amount, nullString(t.PaymentID), string(t.Status), t.CreatedAt)
	return mapErr(err)
}

func (r planTxRepo) GetByPaymentID(ctx context.Context, paymentID string) (entities.PlanTransaction, error) {
	if paymentID == "" {
		return entities.PlanTransaction{}, nil
	}
	t, err := scanPlanTx(r.q.QueryRowContext(ctx, `select `+planTxColumns+` from plan_transactions where payment_id=$1`, paymentID))
	if noRows(err) {
		return entities.PlanTransaction{}, nil
	}
	return t, err
}

func (r planTxRepo) ListByCondo(ctx context.Context, condoID string) ([]entities.PlanTransaction, error) {
	rows, err := r.q.QueryContext(ctx, `select `+planTxColumns+` from plan_transactions where condo_id=$1 order by created_at asc, id asc`, condoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entities.PlanTransaction, 0)
	for rows.Next() {
		t, err := scanPlanTx(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type receiptRepo struct{ q querier }

// Claim relies on the primary key; a concurrent claim of the same id fails
// with ErrDuplicateKey when the second transaction reaches the insert.
func (r receiptRepo) Claim(ctx context.Context, paymentID string, kind entities.ReceiptKind) error {
	_, err := r.q.ExecContext(ctx, `insert into payment_receipts(payment_id, kind, created_at) values ($1,$2,now())`, paymentID, string(kind))
	return mapErr(err)
}

func (r receiptRepo) Exists(ctx context.Context, paymentID string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, `select exists(select 1 from payment_receipts where payment_id=$1)`, paymentID).Scan(&exists)
	return exists, err
}
