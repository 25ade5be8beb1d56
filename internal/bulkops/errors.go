package bulkops

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/xyzruben/steward/internal/common"
)

// MaxBatchSize caps how many receipts a single bulk mutation may touch.
// Bounds both the validation query and the batch statement.
const MaxBatchSize = 1000

// ValidationErrors reports one or more schema/range violations in a filter
// or update payload. Surfaced directly to the caller; never retried.
type ValidationErrors struct {
	Errs []common.ValidationError
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, ve := range e.Errs {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// BatchSizeError rejects an empty or over-limit id list before any storage
// access happens.
type BatchSizeError struct {
	Message string
}

func (e *BatchSizeError) Error() string {
	return e.Message
}

func errEmptyBatch() error {
	return &BatchSizeError{Message: "no receipt IDs provided"}
}

func errBatchTooLarge(verb string) error {
	return &BatchSizeError{Message: fmt.Sprintf("cannot %s more than %d receipts at once", verb, MaxBatchSize)}
}

// InvalidIDsError means one or more supplied ids did not resolve to a
// receipt owned by the caller. Whether such an id does not exist at all or
// belongs to another user is deliberately not distinguished.
type InvalidIDsError struct {
	IDs []uuid.UUID
}

func (e *InvalidIDsError) Error() string {
	strs := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		strs[i] = id.String()
	}
	return fmt.Sprintf("invalid receipt IDs: %s", strings.Join(strs, ", "))
}

// Wrapped storage-error codes. Raw driver errors are logged at the service
// boundary and never leak past these.
const (
	codeFilterFailed  = "FILTER_FAILED"
	codeOptionsFailed = "FILTER_OPTIONS_FAILED"
	codeStatsFailed   = "STATS_FAILED"
	codeExportFailed  = "EXPORT_FAILED"
)

func wrapStorageErr(code, message string, cause error) error {
	return common.NewAppError(code, message, cause)
}
