// Package postgres implements the unit of work on PostgreSQL through the pgx
// database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"certifica_condo/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrUniqueViolation = "23505"

// querier is satisfied by *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

var _ interfaces.IStore = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// WithinTx runs fn at the server's default isolation (READ COMMITTED). Writers
// lock the rows they read with for update, and unique constraints guard the
// payment receipts and candidacies.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.IStoreTx) error) error {
	return s.run(ctx, nil, fn)
}

func (s *Store) View(ctx context.Context, fn func(ctx context.Context, tx interfaces.IStoreTx) error) error {
	return s.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (s *Store) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx interfaces.IStoreTx) error) error {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctx, &storeTx{q: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

type storeTx struct {
	q querier
}

func (t *storeTx) Companies() interfaces.ICompanyRepository { return companyRepo{t.q} }
func (t *storeTx) Condos() interfaces.ICondoRepository { return condoRepo{t.q} }
func (t *storeTx) Tenders() interfaces.ITenderRepository { return tenderRepo{t.q} }
func (t *storeTx) Candidacies() interfaces.ICandidacyRepository { return candidacyRepo{t.q} }
func (t *storeTx) CoinTransactions() interfaces.ICoinTransactionRepository { return coinTxRepo{t.q} }
func (t *storeTx) PlanTransactions() interfaces.IPlanTransactionRepository { return planTxRepo{t.q} }
func (t *storeTx) Ratings() interfaces.IRatingRepository { return ratingRepo{t.q} }
func (t *storeTx) PaymentReceipts() interfaces.IPaymentReceiptRepository { return receiptRepo{t.q} }

// mapErr turns unique violations into interfaces.ErrDuplicateKey.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return fmt.Errorf("%w: %s", interfaces.ErrDuplicateKey, pgErr.ConstraintName)
	}
	return err
}

// noRows reports whether err is sql.ErrNoRows; repositories then return a
// zero entity.
func noRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

type scanner interface {
	Scan(dest ...any) error
}
