package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/ricechain/supply-tracker/internal/logger"
	"github.com/ricechain/supply-tracker/internal/models"
)

// Receipt statuses. A receipt is pending from Record until Confirm.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// FirstBlock is the block number given to the first confirmed record.
const FirstBlock int64 = 10000

// DefaultCapacity bounds how many confirmed receipts Simulated keeps for Verify.
const DefaultCapacity = 100000

var ErrUnknownHash = errors.New("ledger: unknown hash")

// Entry is the payload anchored on the ledger for one transaction.
type Entry struct {
	BatchCode   string `json:"batch_code"`
	Action      string `json:"action"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
}

// Ledger anchors transaction entries and verifies previously issued hashes.
// Record stages an entry; it becomes verifiable only once confirmed, so a
// write that is rolled back can be discarded without leaving a receipt.
type Ledger interface {
	Record(ctx context.Context, entry Entry) (models.LedgerReceipt, error)
	Confirm(ctx context.Context, hash string) (models.LedgerReceipt, error)
	Discard(ctx context.Context, hash string) error
	Verify(ctx context.Context, hash string) (models.LedgerReceipt, error)
}

// Simulated is an in-process stand-in for a real ledger. It never talks to a
// network; every receipt it issues is flagged as simulated. Receipts live in
// memory only. Once more than the configured capacity have been confirmed the
// oldest are forgotten and no longer verify.
type Simulated struct {
	mu        sync.Mutex
	seq       int64
	next      int64
	capacity  int
	pending   map[string]models.LedgerReceipt
	confirmed map[string]models.LedgerReceipt
	order     []string // confirmed hashes, oldest first
	now       func() time.Time
}

type Option func(*Simulated)

// WithClock overrides the time source used for receipts.
func WithClock(now func() time.Time) Option {
	return func(s *Simulated) {
		s.now = now
	}
}

// WithCapacity sets how many confirmed receipts are retained.
func WithCapacity(n int) Option {
	return func(s *Simulated) {
		if n > 0 {
			s.capacity = n
		}
	}
}

func NewSimulated(opts ...Option) *Simulated {
	s := &Simulated{
		next:      FirstBlock,
		capacity:  DefaultCapacity,
		pending:   make(map[string]models.LedgerReceipt),
		confirmed: make(map[string]models.LedgerReceipt),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record hashes entry together with the record time and stages it as pending.
// No block is assigned until Confirm.
func (s *Simulated) Record(ctx context.Context, entry Entry) (models.LedgerReceipt, error) {
	if err := ctx.Err(); err != nil {
		return models.LedgerReceipt{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now().UTC()
	s.seq++
	payload, err := json.Marshal(struct {
		Entry
		Nonce     int64  `json:"nonce"`
		Timestamp string `json:"timestamp"`
	}{entry, s.seq, ts.Format(time.RFC3339Nano)})
	if err != nil {
		return models.LedgerReceipt{}, err
	}
	sum := sha256.Sum256(payload)

	receipt := models.LedgerReceipt{
		Hash:      "0x" + hex.EncodeToString(sum[:]),
		Timestamp: ts,
		Status:    StatusPending,
		Simulated: true,
	}
	s.pending[receipt.Hash] = receipt

	logger.Log.Infow("ledger record",
		"batch_code", entry.BatchCode,
		"action", entry.Action,
		"hash", receipt.Hash,
	)
	return receipt, nil
}

// Confirm assigns the next block to a pending receipt and makes it verifiable.
func (s *Simulated) Confirm(_ context.Context, hash string) (models.LedgerReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, ok := s.pending[hash]
	if !ok {
		return models.LedgerReceipt{}, ErrUnknownHash
	}
	delete(s.pending, hash)

	receipt.BlockNumber = s.next
	receipt.Status = StatusConfirmed
	s.next++

	s.confirmed[hash] = receipt
	s.order = append(s.order, hash)
	if len(s.order) > s.capacity {
		evicted := s.order[0]
		s.order = s.order[1:]
		delete(s.confirmed, evicted)
	}

	logger.Log.Infow("ledger confirm", "hash", hash, "block", receipt.BlockNumber)
	return receipt, nil
}

// Discard drops a pending receipt. Unknown hashes are ignored.
func (s *Simulated) Discard(_ context.Context, hash string) error {
	s.mu.Lock()
	_, ok := s.pending[hash]
	delete(s.pending, hash)
	s.mu.Unlock()

	if ok {
		logger.Log.Infow("ledger discard", "hash", hash)
	}
	return nil
}

// Verify returns the receipt for hash when it was confirmed by this instance.
func (s *Simulated) Verify(ctx context.Context, hash string) (models.LedgerReceipt, error) {
	if err := ctx.Err(); err != nil {
		return models.LedgerReceipt{}, err
	}

	s.mu.Lock()
	receipt, ok := s.confirmed[hash]
	s.mu.Unlock()

	if !ok {
		return models.LedgerReceipt{}, ErrUnknownHash
	}
	receipt.Verified = true
	return receipt, nil
}
