package services

//go:generate mockgen -source=batch.go -destination=mock_batch.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ricechain/supply-tracker/internal/ledger"
	"github.com/ricechain/supply-tracker/internal/logger"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/ricechain/supply-tracker/internal/repositories"
	"github.com/shopspring/decimal"
)

// BatchReader defines read-only operations for batches.
type BatchReader interface {
	GetByCode(ctx context.Context, code string) (*models.BatchDB, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context) ([]models.BatchDB, error)
}

// BatchWriter defines write operations for batches.
type BatchWriter interface {
	Create(ctx context.Context, b models.NewBatch) (int64, error)
}

// TransactionReader reads the history of a batch.
type TransactionReader interface {
	ListByBatchID(ctx context.Context, batchID int64) ([]models.TransactionDB, error)
}

// TransactionWriter appends to the history of a batch.
type TransactionWriter interface {
	Append(ctx context.Context, t models.NewTransaction) (int64, error)
}

// BatchTraceCache stores public batch traces.
// On a miss Get returns the current version of the entry; Set only stores the
// trace if no Delete has happened since that version was read.
type BatchTraceCache interface {
	Get(ctx context.Context, code string) (*models.BatchTrace, int64, error)
	Set(ctx context.Context, code string, version int64, trace *models.BatchTrace) error
	Delete(ctx context.Context, code string) error
}

// Ledger anchors transactions and verifies receipts. Recorded entries are
// pending until confirmed.
type Ledger interface {
	Record(ctx context.Context, entry ledger.Entry) (models.LedgerReceipt, error)
	Confirm(ctx context.Context, hash string) (models.LedgerReceipt, error)
	Discard(ctx context.Context, hash string) error
	Verify(ctx context.Context, hash string) (models.LedgerReceipt, error)
}

// EventPublisher delivers batch events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.BatchEvent) error
}

// BatchService handles batch registration, tracing and the transaction log.
type BatchService struct {
	batchReader   BatchReader
	batchWriter   BatchWriter
	txReader      TransactionReader
	txWriter      TransactionWriter
	cache         BatchTraceCache
	ledger        Ledger
	publisher     EventPublisher
	afterCommit   AfterCommit
	afterRollback AfterRollback
	now           func() time.Time
}

type BatchServiceOption func(*BatchService)

// WithTraceCache enables caching of public traces.
func WithTraceCache(cache BatchTraceCache) BatchServiceOption {
	return func(s *BatchService) {
		s.cache = cache
	}
}

// WithEventPublisher enables publishing of batch events.
func WithEventPublisher(p EventPublisher) BatchServiceOption {
	return func(s *BatchService) {
		s.publisher = p
	}
}

// WithAfterCommit defers cache invalidation and event publishing until the
// request transaction commits.
func WithAfterCommit(hook AfterCommit) BatchServiceOption {
	return func(s *BatchService) {
		s.afterCommit = hook
	}
}

// WithAfterRollback discards pending ledger receipts when the request
// transaction is rolled back after the service returned successfully.
func WithAfterRollback(hook AfterRollback) BatchServiceOption {
	return func(s *BatchService) {
		s.afterRollback = hook
	}
}

// NewBatchService creates a new BatchService instance.
func NewBatchService(
	batchReader BatchReader,
	batchWriter BatchWriter,
	txReader TransactionReader,
	txWriter TransactionWriter,
	l Ledger,
	opts ...BatchServiceOption,
) *BatchService {
	s := &BatchService{
		batchReader: batchReader,
		batchWriter: batchWriter,
		txReader:    txReader,
		txWriter:    txWriter,
		ledger:      l,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a batch together with its CREATE transaction. Both rows
// are written through the request transaction when one is present.
func (s *BatchService) Create(ctx context.Context, userID int64, req models.CreateBatchRequest) (*models.CreatedBatch, error) {
	exists, err := s.batchReader.ExistsByCode(ctx, req.BatchCode)
	if err != nil {
		logger.Log.Errorw("failed to check batch exists", "batch_code", req.BatchCode, "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Warnw("batch already exists", "batch_code", req.BatchCode)
		return nil, ErrBatchAlreadyExists
	}

	quantity := decimal.Zero
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	unit := req.Unit
	if unit == "" {
		unit = models.DefaultUnit
	}
	description := fmt.Sprintf("Created batch %s - %s", req.BatchCode, req.ProductName)

	receipt, err := s.ledger.Record(ctx, ledger.Entry{
		BatchCode:   req.BatchCode,
		Action:      models.ActionCreate,
		Description: description,
		UserID:      userID,
	})
	if err != nil {
		logger.Log.Errorw("failed to record batch on ledger", "batch_code", req.BatchCode, "err", err)
		return nil, err
	}
	settled := false
	defer func() {
		if !settled {
			s.discardReceipt(ctx, receipt.Hash)
		}
	}()

	batchID, err := s.batchWriter.Create(ctx, models.NewBatch{
		BatchCode:   req.BatchCode,
		ProductName: req.ProductName,
		Quantity:    quantity,
		Unit:        unit,
		CreatedBy:   userID,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Warnw("batch already exists", "batch_code", req.BatchCode)
			return nil, ErrBatchAlreadyExists
		}
		logger.Log.Errorw("failed to save batch", "batch_code", req.BatchCode, "err", err)
		return nil, err
	}

	if _, err := s.txWriter.Append(ctx, models.NewTransaction{
		BatchID:     batchID,
		UserID:      userID,
		Action:      models.ActionCreate,
		Description: description,
		TxHash:      receipt.Hash,
	}); err != nil {
		logger.Log.Errorw("failed to save create transaction", "batch_code", req.BatchCode, "err", err)
		return nil, err
	}

	logger.Log.Infow("batch created", "batch_id", batchID, "batch_code", req.BatchCode, "user_id", userID)

	settled = true
	s.settleReceipt(ctx, receipt.Hash)
	s.publish(ctx, models.EventBatchCreated, req.BatchCode, models.ActionCreate, userID, receipt.Hash)

	return &models.CreatedBatch{
		ID:          batchID,
		BatchCode:   req.BatchCode,
		ProductName: req.ProductName,
		Quantity:    quantity,
		Unit:        unit,
		TxHash:      receipt.Hash,
	}, nil
}

// GetTrace returns a batch with its full history, oldest transaction first.
func (s *BatchService) GetTrace(ctx context.Context, code string) (*models.BatchTrace, error) {
	var version int64
	if s.cache != nil {
		trace, v, err := s.cache.Get(ctx, code)
		if err == nil {
			return trace, nil
		}
		version = v
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("trace cache unavailable", "batch_code", code, "err", err)
		}
	}

	batch, err := s.batchReader.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		logger.Log.Errorw("failed to get batch", "batch_code", code, "err", err)
		return nil, err
	}

	txs, err := s.txReader.ListByBatchID(ctx, batch.ID)
	if err != nil {
		logger.Log.Errorw("failed to get transactions", "batch_id", batch.ID, "err", err)
		return nil, err
	}
	if txs == nil {
		txs = []models.TransactionDB{}
	}

	trace := &models.BatchTrace{
		Batch:        *batch,
		Status:       models.DeriveStatus(txs),
		Transactions: txs,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, code, version, trace); err != nil {
			logger.Log.Warnw("failed to cache trace", "batch_code", code, "err", err)
		}
	}

	return trace, nil
}

// List returns every batch, newest first.
func (s *BatchService) List(ctx context.Context) ([]models.BatchDB, error) {
	batches, err := s.batchReader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list batches", "err", err)
		return nil, err
	}
	if batches == nil {
		batches = []models.BatchDB{}
	}
	return batches, nil
}

// AppendTransaction adds an event to the history of an existing batch.
func (s *BatchService) AppendTransaction(ctx context.Context, userID int64, code string, req models.AppendTransactionRequest) error {
	batch, err := s.batchReader.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warnw("transaction for unknown batch", "batch_code", code)
			return ErrBatchNotFound
		}
		logger.Log.Errorw("failed to get batch", "batch_code", code, "err", err)
		return err
	}

	receipt, err := s.ledger.Record(ctx, ledger.Entry{
		BatchCode:   code,
		Action:      req.Action,
		Description: req.Description,
		UserID:      userID,
	})
	if err != nil {
		logger.Log.Errorw("failed to record transaction on ledger", "batch_code", code, "err", err)
		return err
	}
	settled := false
	defer func() {
		if !settled {
			s.discardReceipt(ctx, receipt.Hash)
		}
	}()

	location := req.Location
	if location != nil && *location == "" {
		location = nil
	}

	if _, err := s.txWriter.Append(ctx, models.NewTransaction{
		BatchID:     batch.ID,
		UserID:      userID,
		Action:      req.Action,
		Description: req.Description,
		Location:    location,
		TxHash:      receipt.Hash,
	}); err != nil {
		logger.Log.Errorw("failed to save transaction", "batch_code", code, "err", err)
		return err
	}

	logger.Log.Infow("transaction appended", "batch_code", code, "action", req.Action, "user_id", userID)

	settled = true
	s.settleReceipt(ctx, receipt.Hash)
	if s.cache != nil {
		runAfterCommit(ctx, s.afterCommit, func() {
			if err := s.cache.Delete(context.WithoutCancel(ctx), code); err != nil {
				logger.Log.Warnw("failed to invalidate trace cache", "batch_code", code, "err", err)
			}
		})
	}
	s.publish(ctx, models.EventTransactionAppended, code, req.Action, userID, receipt.Hash)

	return nil
}

// VerifyReceipt looks up a ledger receipt by hash.
func (s *BatchService) VerifyReceipt(ctx context.Context, hash string) (*models.LedgerReceipt, error) {
	receipt, err := s.ledger.Verify(ctx, hash)
	if err != nil {
		if errors.Is(err, ledger.ErrUnknownHash) {
			return nil, ErrReceiptNotFound
		}
		logger.Log.Errorw("failed to verify receipt", "hash", hash, "err", err)
		return nil, err
	}
	return &receipt, nil
}

// settleReceipt confirms the pending receipt once the write commits and
// discards it if the request transaction is rolled back instead.
func (s *BatchService) settleReceipt(ctx context.Context, hash string) {
	runAfterCommit(ctx, s.afterCommit, func() {
		if _, err := s.ledger.Confirm(context.WithoutCancel(ctx), hash); err != nil {
			logger.Log.Errorw("failed to confirm ledger receipt", "hash", hash, "err", err)
		}
	})
	if s.afterRollback != nil {
		s.afterRollback(ctx, func() {
			s.discardReceipt(ctx, hash)
		})
	}
}

func (s *BatchService) discardReceipt(ctx context.Context, hash string) {
	if err := s.ledger.Discard(context.WithoutCancel(ctx), hash); err != nil {
		logger.Log.Warnw("failed to discard ledger receipt", "hash", hash, "err", err)
	}
}

// publish sends an event once the write is committed. Failures are logged only.
func (s *BatchService) publish(ctx context.Context, eventType, code, action string, userID int64, txHash string) {
	if s.publisher == nil {
		return
	}

	event := models.BatchEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		BatchCode:  code,
		Action:     action,
		UserID:     userID,
		TxHash:     txHash,
		OccurredAt: s.now().UTC(),
	}

	runAfterCommit(ctx, s.afterCommit, func() {
		if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
			logger.Log.Warnw("failed to publish batch event", "event_id", event.EventID, "type", event.Type, "err", err)
		}
	})
}
