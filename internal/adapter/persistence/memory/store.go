package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"
)

var errReadOnly = errors.New("memory store: write in read-only transaction")

// Store implements interfaces.IStore in process.
//
// Writers are serialized by one mutex and work on a copy of the state that is
// swapped in only when fn succeeds, so a failing unit of work leaves nothing
// behind. Intended for tests and single-instance development runs.
type Store struct {
	mu    sync.RWMutex
	state *state
}

var _ interfaces.IStore = (*Store)(nil)

type state struct {
	companies   map[string]entities.Company
	condos      map[string]entities.Condo
	tenders     map[string]entities.Tender
	candidacies map[string]entities.Candidacy
	coinTxs     []entities.CoinTransaction
	planTxs     []entities.PlanTransaction
	ratings     map[string]entities.Rating // tender id -> rating
	receipts    map[string]entities.ReceiptKind
}

func NewStore() *Store {
	return &Store{state: &state{
		companies:   make(map[string]entities.Company),
		condos:      make(map[string]entities.Condo),
		tenders:     make(map[string]entities.Tender),
		candidacies: make(map[string]entities.Candidacy),
		ratings:     make(map[string]entities.Rating),
		receipts:    make(map[string]entities.ReceiptKind),
	}}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.IStoreTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &storeTx{st: work, writable: true}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) View(ctx context.Context, fn func(ctx context.Context, tx interfaces.IStoreTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(ctx, &storeTx{st: s.state})
}

func (st *state) clone() *state {
	out := &state{
		companies:   make(map[string]entities.Company, len(st.companies)),
		condos:      make(map[string]entities.Condo, len(st.condos)),
		tenders:     make(map[string]entities.Tender, len(st.tenders)),
		candidacies: make(map[string]entities.Candidacy, len(st.candidacies)),
		coinTxs:     append([]entities.CoinTransaction(nil), st.coinTxs...),
		planTxs:     append([]entities.PlanTransaction(nil), st.planTxs...),
		ratings:     make(map[string]entities.Rating, len(st.ratings)),
		receipts:    make(map[string]entities.ReceiptKind, len(st.receipts)),
	}
	for k, v := range st.companies {
		out.companies[k] = v
	}
	for k, v := range st.condos {
		out.condos[k] = v
	}
	for k, v := range st.tenders {
		out.tenders[k] = v
	}
	for k, v := range st.candidacies {
		out.candidacies[k] = v
	}
	for k, v := range st.ratings {
		out.ratings[k] = v
	}
	for k, v := range st.receipts {
		out.receipts[k] = v
	}
	return out
}

type storeTx struct {
	st       *state
	writable bool
}

func (t *storeTx) Companies() interfaces.ICompanyRepository { return companyRepo{t} }
func (t *storeTx) Condos() interfaces.ICondoRepository { return condoRepo{t} }
func (t *storeTx) Tenders() interfaces.ITenderRepository { return tenderRepo{t} }
func (t *storeTx) Candidacies() interfaces.ICandidacyRepository { return candidacyRepo{t} }
func (t *storeTx) CoinTransactions() interfaces.ICoinTransactionRepository { return coinTxRepo{t} }
func (t *storeTx) PlanTransactions() interfaces.IPlanTransactionRepository { return planTxRepo{t} }
func (t *storeTx) Ratings() interfaces.IRatingRepository { return ratingRepo{t} }
func (t *storeTx) PaymentReceipts() interfaces.IPaymentReceiptRepository { return receiptRepo{t} }

func (t *storeTx) checkWritable() error {
	if !t.writable {
		return errReadOnly
	}
	return nil
}

// --- companies ---

type companyRepo struct{ tx *storeTx }

func (r companyRepo) Create(_ context.Context, c entities.Company) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.companies[c.ID]; ok {
		return interfaces.ErrDuplicateKey
	}
	for _, existing := range r.tx.st.companies {
		if existing.CNPJ != "" && existing.CNPJ == c.CNPJ {
			return interfaces.ErrDuplicateKey
		}
	}
	r.tx.st.companies[c.ID] = c
	return nil
}

func (r companyRepo) GetByID(_ context.Context, id string) (entities.Company, error) {
	return r.tx.st.companies[id], nil
}

func (r companyRepo) GetForUpdate(ctx context.Context, id string) (entities.Company, error) {
	return r.GetByID(ctx, id)
}

func (r companyRepo) List(_ context.Context, status entities.ApprovalStatus) ([]entities.Company, error) {
	out := make([]entities.Company, 0)
	for _, c := range r.tx.st.companies {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r companyRepo) ListDirectory(_ context.Context) ([]entities.Company, error) {
	out := make([]entities.Company, 0)
	for _, c := range r.tx.st.companies {
		if c.CanBid() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return byName(out[i].Name, out[i].ID, out[j].Name, out[j].ID) })
	return out, nil
}

func (r companyRepo) UpdateBalance(_ context.Context, id string, balance int64) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	c, ok := r.tx.st.companies[id]
	if !ok {
		return nil
	}
	c.Balance = balance
	r.tx.st.companies[id] = c
	return nil
}

func (r companyRepo) UpdateRegistration(_ context.Context, id string, status entities.ApprovalStatus, active bool) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	c, ok := r.tx.st.companies[id]
	if !ok {
		return nil
	}
	c.Status = status
	c.Active = active
	r.tx.st.companies[id] = c
	return nil
}

// --- condos ---

type condoRepo struct{ tx *storeTx }

func (r condoRepo) Create(_ context.Context, c entities.Condo) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.condos[c.ID]; ok {
		return interfaces.ErrDuplicateKey
	}
	for _, existing := range r.tx.st.condos {
		if existing.CNPJ != "" && existing.CNPJ == c.CNPJ {
			return interfaces.ErrDuplicateKey
		}
	}
	r.tx.st.condos[c.ID] = c
	return nil
}

func (r condoRepo) GetByID(_ context.Context, id string) (entities.Condo, error) {
	return r.tx.st.condos[id], nil
}

func (r condoRepo) GetForUpdate(ctx context.Context, id string) (entities.Condo, error) {
	return r.GetByID(ctx, id)
}

func (r condoRepo) List(_ context.Context, status entities.ApprovalStatus) ([]entities.Condo, error) {
	out := make([]entities.Condo, 0)
	for _, c := range r.tx.st.condos {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r condoRepo) ListDirectory(_ context.Context) ([]entities.Condo, error) {
	out := make([]entities.Condo, 0)
	for _, c := range r.tx.st.condos {
		if c.Certified() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return byName(out[i].Name, out[i].ID, out[j].Name, out[j].ID) })
	return out, nil
}

func (r condoRepo) UpdateRank(_ context.Context, id string, rank entities.CondoRank) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	c, ok := r.tx.st.condos[id]
	if !ok {
		return nil
	}
	c.Rank = rank
	r.tx.st.condos[id] = c
	return nil
}

func (r condoRepo) UpdateSubscription(_ context.Context, id, planID string, expiresAt time.Time) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	c, ok := r.tx.st.condos[id]
	if !ok {
		return nil
	}
	c.PlanID = planID
	c.PlanExpiresAt = &expiresAt
	r.tx.st.condos[id] = c
	return nil
}

func (r condoRepo) UpdateRegistration(_ context.Context, id string, status entities.ApprovalStatus, active bool) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	c, ok := r.tx.st.condos[id]
	if !ok {
		return nil
	}
	c.Status = status
	c.Active = active
	r.tx.st.condos[id] = c
	return nil
}

// byName orders like the SQL directory: name, then id.
func byName(nameA, idA, nameB, idB string) bool {
	if nameA != nameB {
		return nameA < nameB
	}
	return idA < idB
}

// --- tenders ---

type tenderRepo struct{ tx *storeTx }

func (r tenderRepo) Create(_ context.Context, t entities.Tender) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.tenders[t.ID]; ok {
		return interfaces.ErrDuplicateKey
	}
	r.tx.st.tenders[t.ID] = t
	return nil
}

func (r tenderRepo) GetByID(_ context.Context, id string) (entities.Tender, error) {
	return r.tx.st.tenders[id], nil
}

func (r tenderRepo) GetForUpdate(ctx context.Context, id string) (entities.Tender, error) {
	return r.GetByID(ctx, id)
}

func (r tenderRepo) GetForShare(ctx context.Context, id string) (entities.Tender, error) {
	return r.GetByID(ctx, id)
}

func (r tenderRepo) Update(_ context.Context, t entities.Tender) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.tenders[t.ID]; !ok {
		return nil
	}
	r.tx.st.tenders[t.ID] = t
	return nil
}

func (r tenderRepo) ListByStatus(_ context.Context, status entities.TenderStatus) ([]entities.Tender, error) {
	return r.filter(func(t entities.Tender) bool { return t.Status == status }), nil
}

func (r tenderRepo) ListByCondo(_ context.Context, condoID string) ([]entities.Tender, error) {
	return r.filter(func(t entities.Tender) bool { return t.CondoID == condoID }), nil
}

func (r tenderRepo) filter(keep func(entities.Tender) bool) []entities.Tender {
	out := make([]entities.Tender, 0)
	for _, t := range r.tx.st.tenders {
		if keep(t) {
			out = append(out, t)
		}
	}
	// newest first
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// --- candidacies ---

type candidacyRepo struct{ tx *storeTx }

func (r candidacyRepo) Create(ctx context.Context, c entities.Candidacy) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if existing, _ := r.GetByTenderAndCompany(ctx, c.TenderID, c.CompanyID); existing.ID != "" {
		return interfaces.ErrDuplicateKey
	}
	if _, ok := r.tx.st.candidacies[c.ID]; ok {
		return interfaces.ErrDuplicateKey
	}
	r.tx.st.candidacies[c.ID] = c
	return nil
}

func (r candidacyRepo) GetByID(_ context.Context, id string) (entities.Candidacy, error) {
	return r.tx.st.candidacies[id], nil
}

func (r candidacyRepo) GetByTenderAndCompany(_ context.Context, tenderID, companyID string) (entities.Candidacy, error) {
	for _, c := range r.tx.st.candidacies {
		if c.TenderID == tenderID && c.CompanyID == companyID {
			return c, nil
		}
	}
	return entities.Candidacy{}, nil
}

func (r candidacyRepo) ListByTender(_ context.Context, tenderID string) ([]entities.Candidacy, error) {
	return r.filter(func(c entities.Candidacy) bool { return c.TenderID == tenderID }), nil
}

func (r candidacyRepo) ListByCompany(_ context.Context, companyID string) ([]entities.Candidacy, error) {
	return r.filter(func(c entities.Candidacy) bool { return c.CompanyID == companyID }), nil
}

func (r candidacyRepo) UpdateStatus(_ context.Context, id string, status entities.CandidacyStatus) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	c, ok := r.tx.st.candidacies[id]
	if !ok {
		return nil
	}
	c.Status = status
	r.tx.st.candidacies[id] = c
	return nil
}

func (r candidacyRepo) filter(keep func(entities.Candidacy) bool) []entities.Candidacy {
	out := make([]entities.Candidacy, 0)
	for _, c := range r.tx.st.candidacies {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// --- coin ledger ---

type coinTxRepo struct{ tx *storeTx }

func (r coinTxRepo) Append(ctx context.Context, t entities.CoinTransaction) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if t.PaymentID != "" {
		if existing, _ := r.GetByPaymentID(ctx, t.PaymentID); existing.ID != "" {
			return interfaces.ErrDuplicateKey
		}
	}
	r.tx.st.coinTxs = append(r.tx.st.coinTxs, t)
	return nil
}

func (r coinTxRepo) GetByPaymentID(_ context.Context, paymentID string) (entities.CoinTransaction, error) {
	if paymentID == "" {
		return entities.CoinTransaction{}, nil
	}
	for _, t := range r.tx.st.coinTxs {
		if t.PaymentID == paymentID {
			return t, nil
		}
	}
	return entities.CoinTransaction{}, nil
}

func (r coinTxRepo) ListByCompany(_ context.Context, companyID string) ([]entities.CoinTransaction, error) {
	out := make([]entities.CoinTransaction, 0)
	for _, t := range r.tx.st.coinTxs {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r coinTxRepo) SumByCompany(ctx context.Context, companyID string) (int64, error) {
	txs, _ := r.ListByCompany(ctx, companyID)
	return entities.SumQuantities(txs), nil
}

// --- plan ledger ---

type planTxRepo struct{ tx *storeTx }

func (r planTxRepo) Append(ctx context.Context, t entities.PlanTransaction) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if t.PaymentID != "" {
		if existing, _ := r.GetByPaymentID(ctx, t.PaymentID); existing.ID != "" {
			return interfaces.ErrDuplicateKey
		}
	}
	r.tx.st.planTxs = append(r.tx.st.planTxs, t)
	return nil
}

func (r planTxRepo) GetByPaymentID(_ context.Context, paymentID string) (entities.PlanTransaction, error) {
	if paymentID == "" {
		return entities.PlanTransaction{}, nil
	}
	for _, t := range r.tx.st.planTxs {
		if t.PaymentID == paymentID {
			return t, nil
		}
	}
	return entities.PlanTransaction{}, nil
}

func (r planTxRepo) ListByCondo(_ context.Context, condoID string) ([]entities.PlanTransaction, error) {
	out := make([]entities.PlanTransaction, 0)
	for _, t := range r.tx.st.planTxs {
		if t.CondoID == condoID {
			out = append(out, t)
		}
	}
	return out, nil
}

// --- ratings ---

type ratingRepo struct{ tx *storeTx }

func (r ratingRepo) Create(_ context.Context, rt entities.Rating) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.ratings[rt.TenderID]; ok {
		return interfaces.ErrDuplicateKey
	}
	r.tx.st.ratings[rt.TenderID] = rt
	return nil
}

func (r ratingRepo) GetByTender(_ context.Context, tenderID string) (entities.Rating, error) {
	return r.tx.st.ratings[tenderID], nil
}

func (r ratingRepo) ListByCompany(_ context.Context, companyID string) ([]entities.Rating, error) {
	out := make([]entities.Rating, 0)
	for _, rt := range r.tx.st.ratings {
		if rt.CompanyID == companyID {
			out = append(out, rt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// --- payment receipts ---

type receiptRepo struct{ tx *storeTx }

func (r receiptRepo) Claim(_ context.Context, paymentID string, kind entities.ReceiptKind) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.receipts[paymentID]; ok {
		return interfaces.ErrDuplicateKey
	}
	r.tx.st.receipts[paymentID] = kind
	return nil
}

func (r receiptRepo) Exists(_ context.Context, paymentID string) (bool, error) {
	_, ok := r.tx.st.receipts[paymentID]
	return ok, nil
}
