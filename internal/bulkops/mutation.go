package bulkops

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xyzruben/steward/internal/cache"
	"github.com/xyzruben/steward/internal/common"
)

// MutationService applies update, delete and export-preparation to an
// explicit, caller-provided list of receipt ids, never to whatever a
// filter currently matches. Each call is a self-contained
// validate→execute→report cycle.
//
// Preflight for every operation: reject empty lists, reject lists over
// MaxBatchSize, then re-query storage for {id in list, owner = user} and
// fail fast if any id does not resolve. Ownership is re-checked inside the
// batch statement as well, so a bypassed preflight still cannot cross
// owners. The window between validation and mutation is deliberately not
// locked: a row deleted concurrently just lowers the reported successCount.
type MutationService struct {
	store  Store
	cache  cache.Cache
	logger *slog.Logger
}

// NewMutationService creates a new bulk mutation service. cache may be nil;
// when present, the owner's cached filter options and stats are invalidated
// after every mutation.
func NewMutationService(store Store, c cache.Cache, logger *slog.Logger) *MutationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MutationService{
		store:  store,
		cache:  c,
		logger: logger,
	}
}

// BulkUpdate applies the sparse patch to every id in ids. The storage layer
// stamps updated_at. Preflight violations (empty/oversized list, invalid
// ids, bad patch) return an error and mutate nothing; a failure of the
// batch statement itself is reported as an OperationResult with one error
// entry per id, all carrying the same underlying message, because the
// statement is all-or-nothing.
func (s *MutationService) BulkUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, patch Update) (*OperationResult, error) {
	start := time.Now()
	opID := newOperationID("bulk_update")

	if err := checkBatchSize(ids, "update"); err != nil {
		return nil, err
	}
	if err := validateUpdate(patch); err != nil {
		return nil, err
	}
	if err := s.preflightOwnership(ctx, userID, ids); err != nil {
		if isStorage(err) {
			return s.failure(opID, ids, start, err), nil
		}
		return nil, err
	}

	modified, err := s.store.UpdateByIDs(ctx, userID, ids, patch)
	if err != nil {
		s.logger.Error("bulk update failed", "operation_id", opID, "request_id", common.RequestIDFromContext(ctx), "user_id", userID, "count", len(ids), "error", err)
		return s.failure(opID, ids, start, err), nil
	}

	s.invalidateOwner(ctx, userID)
	s.logger.Info("bulk update completed",
		"operation_id", opID, "request_id", common.RequestIDFromContext(ctx), "user_id", userID,
		"processed", len(ids), "modified", modified,
		"elapsed_ms", time.Since(start).Milliseconds())

	return &OperationResult{
		Success:        true,
		ProcessedCount: len(ids),
		SuccessCount:   modified,
		ErrorCount:     0,
		OperationID:    opID,
		Duration:       time.Since(start),
	}, nil
}

// BulkDelete removes every id in ids. Only the database rows are removed;
// the stored image files are left behind.
// TODO: delete the associated stored images once the storage collaborator
// exposes a batch remove.
func (s *MutationService) BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (*OperationResult, error) {
	start := time.Now()
	opID := newOperationID("bulk_delete")

	if err := checkBatchSize(ids, "delete"); err != nil {
		return nil, err
	}
	if err := s.preflightOwnership(ctx, userID, ids); err != nil {
		if isStorage(err) {
			return s.failure(opID, ids, start, err), nil
		}
		return nil, err
	}

	removed, err := s.store.DeleteByIDs(ctx, userID, ids)
	if err != nil {
		s.logger.Error("bulk delete failed", "operation_id", opID, "request_id", common.RequestIDFromContext(ctx), "user_id", userID, "count", len(ids), "error", err)
		return s.failure(opID, ids, start, err), nil
	}

	s.invalidateOwner(ctx, userID)
	s.logger.Info("bulk delete completed",
		"operation_id", opID, "request_id", common.RequestIDFromContext(ctx), "user_id", userID,
		"processed", len(ids), "removed", removed,
		"elapsed_ms", time.Since(start).Milliseconds())

	return &OperationResult{
		Success:        true,
		ProcessedCount: len(ids),
		SuccessCount:   removed,
		ErrorCount:     0,
		OperationID:    opID,
		Duration:       time.Since(start),
	}, nil
}

// PrepareExport runs the same ownership preflight as update/delete, then
// re-fetches the full projection for the validated ids. Read-only. The
// result echoes the requested ids as its applied filter, as an audit trail;
// byte-level rendering is the export formatter's job.
func (s *MutationService) PrepareExport(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (*FilterResult, error) {
	if err := checkBatchSize(ids, "export"); err != nil {
		return nil, err
	}
	if err := s.preflightOwnership(ctx, userID, ids); err != nil {
		if isStorage(err) {
			return nil, wrapStorageErr(codeExportFailed, "failed to prepare export", err)
		}
		return nil, err
	}

	recs, err := s.store.FetchByIDs(ctx, userID, ids)
	if err != nil {
		s.logger.Error("export fetch failed", "user_id", userID, "count", len(ids), "error", err)
		return nil, wrapStorageErr(codeExportFailed, "failed to prepare export", err)
	}
	total, err := s.store.CountAll(ctx, userID)
	if err != nil {
		s.logger.Error("export count failed", "user_id", userID, "error", err)
		return nil, wrapStorageErr(codeExportFailed, "failed to prepare export", err)
	}

	return &FilterResult{
		Receipts:      recs,
		TotalCount:    total,
		FilteredCount: len(recs),
		Applied:       AppliedFilter{ReceiptIDs: ids},
	}, nil
}

func checkBatchSize(ids []uuid.UUID, verb string) error {
	if len(ids) == 0 {
		return errEmptyBatch()
	}
	if len(ids) > MaxBatchSize {
		return errBatchTooLarge(verb)
	}
	return nil
}

// preflightOwnership re-queries storage for the ids actually owned by the
// user and rejects the whole batch if any input id is missing from the
// result. A storage failure is returned wrapped in storageErr so callers
// can tell it apart from an id rejection.
func (s *MutationService) preflightOwnership(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	owned, err := s.store.FetchOwnedIDs(ctx, userID, ids)
	if err != nil {
		return storageErr{err}
	}

	ownedSet := make(map[uuid.UUID]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}
	var invalid []uuid.UUID
	for _, id := range ids {
		if _, ok := ownedSet[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return &InvalidIDsError{IDs: invalid}
	}
	return nil
}

// storageErr marks an error as coming from the store during preflight, as
// opposed to an id-list rejection.
type storageErr struct{ err error }

func (e storageErr) Error() string { return e.err.Error() }
func (e storageErr) Unwrap() error { return e.err }

func isStorage(err error) bool {
	_, ok := err.(storageErr)
	return ok
}

// failure builds the no-partial-success result: the batch statement either
// applied everywhere or nowhere, so every id gets the same error entry.
func (s *MutationService) failure(opID string, ids []uuid.UUID, start time.Time, cause error) *OperationResult {
	errs := make([]ItemError, len(ids))
	for i, id := range ids {
		errs[i] = ItemError{ReceiptID: id, Message: cause.Error()}
	}
	return &OperationResult{
		Success:        false,
		ProcessedCount: len(ids),
		SuccessCount:   0,
		ErrorCount:     len(ids),
		Errors:         errs,
		OperationID:    opID,
		Duration:       time.Since(start),
	}
}

func (s *MutationService) invalidateOwner(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePrefix(ctx, ownerPrefix(userID)); err != nil {
		s.logger.Warn("cache invalidation failed", "user_id", userID, "error", err)
	}
}
