package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Cart Payment Repo ---

type inMemoryCartPaymentRepo struct {
	mu           sync.RWMutex
	payments     map[uuid.UUID]*domain.CartPayment
	byKey        map[string]uuid.UUID
	fingerprints map[string]string
}

func newInMemoryCartPaymentRepo() *inMemoryCartPaymentRepo {
	return &inMemoryCartPaymentRepo{
		payments:     make(map[uuid.UUID]*domain.CartPayment),
		byKey:        make(map[string]uuid.UUID),
		fingerprints: make(map[string]string),
	}
}

func (r *inMemoryCartPaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.CartPayment, idempotencyKey, fingerprint string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byKey[idempotencyKey]; ok {
		return ports.ErrUniqueViolation
	}
	cp := *p
	r.payments[p.ID] = &cp
	r.byKey[idempotencyKey] = p.ID
	r.fingerprints[idempotencyKey] = fingerprint
	return nil
}

func (r *inMemoryCartPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CartPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryCartPaymentRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.CartPayment, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[key]
	if !ok {
		return nil, "", nil
	}
	cp := *r.payments[id]
	return &cp, r.fingerprints[key], nil
}

func (r *inMemoryCartPaymentRepo) Update(ctx context.Context, tx pgx.Tx, update ports.CartPaymentUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[update.ID]
	if !ok {
		return fmt.Errorf("cart payment not found")
	}
	if update.Amount != nil {
		p.Amount = *update.Amount
	}
	if update.ClientDescription != nil {
		p.ClientDescription = update.ClientDescription
	}
	if update.PayerStatementDescription != nil {
		p.PayerStatementDescription = update.PayerStatementDescription
	}
	if update.LegacyPayment != nil {
		p.LegacyPayment = update.LegacyPayment
	}
	if update.CartMetadata != nil {
		p.CartMetadata = *update.CartMetadata
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Payment Method Lookup ---

type inMemoryPaymentMethods struct {
	mu      sync.RWMutex
	methods map[uuid.UUID]*domain.PaymentMethodRef
}

func newInMemoryPaymentMethods() *inMemoryPaymentMethods {
	return &inMemoryPaymentMethods{methods: make(map[uuid.UUID]*domain.PaymentMethodRef)}
}

func (r *inMemoryPaymentMethods) add(m *domain.PaymentMethodRef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[m.ID] = m
}

func (r *inMemoryPaymentMethods) Resolve(ctx context.Context, paymentMethodID, payerID uuid.UUID) (*domain.PaymentMethodRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.methods[paymentMethodID]
	if !ok {
		return nil, apperror.ErrPaymentMethodNotFound()
	}
	if m.PayerID != payerID {
		return nil, apperror.ErrPaymentMethodMismatch()
	}
	return m, nil
}

// --- In-Memory Transfer Repo ---

type inMemoryTransferRepo struct {
	mu        sync.Mutex
	transfers map[uuid.UUID]*domain.Transfer
}

func newInMemoryTransferRepo() *inMemoryTransferRepo {
	return &inMemoryTransferRepo{transfers: make(map[uuid.UUID]*domain.Transfer)}
}

func (r *inMemoryTransferRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ct := *t
	r.transfers[t.ID] = &ct
	return nil
}

func (r *inMemoryTransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transfers[id]
	if !ok {
		return nil, nil
	}
	ct := *t
	return &ct, nil
}

func (r *inMemoryTransferRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.TransferStatus, submittedBy *int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transfers[id]
	if !ok {
		return false, nil
	}
	if t.Status != from {
		return false, nil
	}
	t.Status = to
	if submittedBy != nil {
		t.SubmittedByID = submittedBy
	}
	t.UpdatedAt = time.Now().UTC()
	return true, nil
}

// --- In-Memory Payable Item Repo ---

type inMemoryPayableItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*domain.PayableItem
}

func newInMemoryPayableItemRepo() *inMemoryPayableItemRepo {
	return &inMemoryPayableItemRepo{items: make(map[uuid.UUID]*domain.PayableItem)}
}

func (r *inMemoryPayableItemRepo) Create(ctx context.Context, item *domain.PayableItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ci := *item
	r.items[item.ID] = &ci
	return nil
}

func (r *inMemoryPayableItemRepo) SumUnattached(ctx context.Context, tx pgx.Tx, accountID int64, start, end time.Time, countries []string) (int64, []uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	countryMatch := func(c string) bool {
		if len(countries) == 0 {
			return true
		}
		for _, want := range countries {
			if c == want {
				return true
			}
		}
		return false
	}

	var total int64
	var ids []uuid.UUID
	for _, item := range r.items {
		if item.PayoutAccountID != accountID || item.TransferID != nil {
			continue
		}
		if item.CreatedAt.Before(start) || !item.CreatedAt.Before(end) {
			continue
		}
		if !countryMatch(item.Country) {
			continue
		}
		total += item.Amount
		ids = append(ids, item.ID)
	}
	return total, ids, nil
}

func (r *inMemoryPayableItemRepo) AttachToTransfer(ctx context.Context, tx pgx.Tx, itemIDs []uuid.UUID, transferID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range itemIDs {
		item, ok := r.items[id]
		if !ok {
			return fmt.Errorf("payable item not found")
		}
		tid := transferID
		item.TransferID = &tid
	}
	return nil
}

func (r *inMemoryPayableItemRepo) attachedCount(transferID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, item := range r.items {
		if item.TransferID != nil && *item.TransferID == transferID {
			n++
		}
	}
	return n
}

// --- In-Memory Payout Request Repo ---

type inMemoryPayoutRequestRepo struct {
	mu         sync.Mutex
	records    map[uuid.UUID]*domain.StripePayoutRequest
	byTransfer map[uuid.UUID]uuid.UUID
}

func newInMemoryPayoutRequestRepo() *inMemoryPayoutRequestRepo {
	return &inMemoryPayoutRequestRepo{
		records:    make(map[uuid.UUID]*domain.StripePayoutRequest),
		byTransfer: make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *inMemoryPayoutRequestRepo) Create(ctx context.Context, pr *domain.StripePayoutRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byTransfer[pr.TransferID]; ok {
		return ports.ErrUniqueViolation
	}
	cp := *pr
	r.records[pr.ID] = &cp
	r.byTransfer[pr.TransferID] = pr.ID
	return nil
}

func (r *inMemoryPayoutRequestRepo) GetByTransferID(ctx context.Context, transferID uuid.UUID) (*domain.StripePayoutRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byTransfer[transferID]
	if !ok {
		return nil, nil
	}
	cp := *r.records[id]
	return &cp, nil
}

func (r *inMemoryPayoutRequestRepo) RecordOutcome(ctx context.Context, outcome ports.PayoutOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pr, ok := r.records[outcome.RequestID]
	if !ok {
		return fmt.Errorf("payout request not found")
	}
	pr.Status = outcome.Status
	pr.Response = outcome.Response
	pr.StripePayoutID = outcome.StripePayoutID
	pr.ReceivedAt = outcome.ReceivedAt
	pr.Events = append(pr.Events, outcome.Event)
	pr.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Account Edit History Repo ---

type inMemoryAccountHistoryRepo struct {
	mu      sync.Mutex
	entries []domain.PaymentAccountEditHistory
}

func newInMemoryAccountHistoryRepo() *inMemoryAccountHistoryRepo {
	return &inMemoryAccountHistoryRepo{}
}

func (r *inMemoryAccountHistoryRepo) RecordBankUpdate(ctx context.Context, entry *domain.PaymentAccountEditHistory) (*domain.PaymentAccountEditHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *entry
	stored.ID = uuid.New()
	stored.Timestamp = time.Now().UTC()
	r.entries = append(r.entries, stored)
	return &stored, nil
}

func (r *inMemoryAccountHistoryRepo) GetMostRecentBankUpdate(ctx context.Context, paymentAccountID int64, within *time.Duration) (*domain.PaymentAccountEditHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *domain.PaymentAccountEditHistory
	cutoff := time.Time{}
	if within != nil {
		cutoff = time.Now().UTC().Add(-*within)
	}
	for i := range r.entries {
		e := &r.entries[i]
		if e.PaymentAccountID != paymentAccountID {
			continue
		}
		if within != nil && e.Timestamp.Before(cutoff) {
			continue
		}
		if latest == nil || e.Timestamp.After(latest.Timestamp) {
			latest = e
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *inMemoryAccountHistoryRepo) ListBankUpdates(ctx context.Context, paymentAccountID int64, start, end time.Time) ([]domain.PaymentAccountEditHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.PaymentAccountEditHistory
	for _, e := range r.entries {
		if e.PaymentAccountID != paymentAccountID {
			continue
		}
		if e.Timestamp.Before(start) || !e.Timestamp.Before(end) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (r *inMemoryAccountHistoryRepo) ListRecentlyUpdatedAccountIDs(ctx context.Context, since time.Time) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[int64]struct{})
	var ids []int64
	for _, e := range r.entries {
		if e.Timestamp.Before(since) {
			continue
		}
		if _, ok := seen[e.PaymentAccountID]; ok {
			continue
		}
		seen[e.PaymentAccountID] = struct{}{}
		ids = append(ids, e.PaymentAccountID)
	}
	return ids, nil
}

// --- In-Memory Service Client Repo ---

type inMemoryServiceClientRepo struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*domain.ServiceClient
}

func newInMemoryServiceClientRepo() *inMemoryServiceClientRepo {
	return &inMemoryServiceClientRepo{clients: make(map[uuid.UUID]*domain.ServiceClient)}
}

func (r *inMemoryServiceClientRepo) Create(ctx context.Context, c *domain.ServiceClient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cc := *c
	r.clients[c.ID] = &cc
	return nil
}

func (r *inMemoryServiceClientRepo) GetByAPIKey(ctx context.Context, apiKey string) (*domain.ServiceClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.APIKey == apiKey {
			cc := *c
			return &cc, nil
		}
	}
	return nil, nil
}

// --- Fake Payout Gateway ---

// fakeGateway records submissions keyed by idempotency key. Replayed keys
// return the original response without counting a new submission, matching
// provider-side idempotency semantics.
type fakeGateway struct {
	mu          sync.Mutex
	submissions map[string]*ports.GatewayPayoutResponse
	adjustments map[string]int64
	submitCalls int
	failNext    error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		submissions: make(map[string]*ports.GatewayPayoutResponse),
		adjustments: make(map[string]int64),
	}
}

func (g *fakeGateway) SubmitPayout(ctx context.Context, req ports.GatewayPayoutRequest) (*ports.GatewayPayoutResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failNext != nil {
		err := g.failNext
		g.failNext = nil
		return nil, err
	}
	if resp, ok := g.submissions[req.IdempotencyKey]; ok {
		cp := *resp
		return &cp, nil
	}
	g.submitCalls++
	raw, _ := json.Marshal(map[string]interface{}{
		"id":     fmt.Sprintf("po_fake_%d", g.submitCalls),
		"status": "paid",
		"amount": req.Amount,
	})
	resp := &ports.GatewayPayoutResponse{
		Status:     "paid",
		ProviderID: fmt.Sprintf("po_fake_%d", g.submitCalls),
		Raw:        raw,
		ReceivedAt: time.Now().UTC(),
	}
	g.submissions[req.IdempotencyKey] = resp
	cp := *resp
	return &cp, nil
}

func (g *fakeGateway) AdjustCharge(ctx context.Context, idempotencyKey, chargeID string, newAmount int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failNext != nil {
		err := g.failNext
		g.failNext = nil
		return err
	}
	g.adjustments[idempotencyKey] = newAmount
	return nil
}

func (g *fakeGateway) submitCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.submitCalls
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
