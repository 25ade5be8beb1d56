package bulkops

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyzruben/steward/internal/common"
)

func ownedIDs(t *testing.T, store *memStore, owner uuid.UUID) []uuid.UUID {
	t.Helper()
	ids, err := store.FilterReceiptIDs(context.Background(), owner, Predicate{})
	require.NoError(t, err)
	return ids
}

func TestBulkUpdate_AppliesPatchToAllIDs(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	svc := NewMutationService(store, nil, nil)
	ids := ownedIDs(t, store, owner)

	res, err := svc.BulkUpdate(context.Background(), owner, ids, Update{
		Category:    ptr("Household"),
		Subcategory: ptr("Misc"),
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, len(ids), res.ProcessedCount)
	assert.Equal(t, len(ids), res.SuccessCount)
	assert.Zero(t, res.ErrorCount)
	assert.Empty(t, res.Errors)
	assert.NotEmpty(t, res.OperationID)

	for _, r := range store.receipts {
		if r.UserID != owner {
			continue
		}
		require.NotNil(t, r.Category)
		assert.Equal(t, "Household", *r.Category)
		require.NotNil(t, r.Subcategory)
		assert.Equal(t, "Misc", *r.Subcategory)
	}
}

func TestBulkUpdate_SparsePatchLeavesOtherFieldsAlone(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	svc := NewMutationService(store, nil, nil)
	ids := ownedIDs(t, store, owner)

	_, err := svc.BulkUpdate(context.Background(), owner, ids[:1], Update{Merchant: ptr("Renamed")})
	require.NoError(t, err)

	r := store.receipts[ids[0]]
	assert.Equal(t, "Renamed", r.Merchant)
	require.NotNil(t, r.Category)
	assert.Equal(t, "Groceries", *r.Category)
	assert.Equal(t, 45.67, r.Total)
}

func TestBulkUpdate_RejectsEmptyPatch(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	svc := NewMutationService(store, nil, nil)

	_, err := svc.BulkUpdate(context.Background(), owner, ownedIDs(t, store, owner), Update{})
	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestBatchSizeLimits(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	svc := NewMutationService(store, nil, nil)
	patch := Update{Category: ptr("X")}

	t.Run("EmptyList", func(t *testing.T) {
		_, err := svc.BulkUpdate(context.Background(), owner, nil, patch)
		var bse *BatchSizeError
		require.ErrorAs(t, err, &bse)
		assert.Equal(t, "no receipt IDs provided", bse.Message)
	})

	t.Run("OverLimit", func(t *testing.T) {
		ids := make([]uuid.UUID, MaxBatchSize+1)
		for i := range ids {
			ids[i] = uuid.New()
		}
		_, err := svc.BulkDelete(context.Background(), owner, ids)
		var bse *BatchSizeError
		require.ErrorAs(t, err, &bse)
		assert.Equal(t, fmt.Sprintf("cannot delete more than %d receipts at once", MaxBatchSize), bse.Message)
	})

	t.Run("ExactlyAtLimit", func(t *testing.T) {
		// A full batch of valid ids passes the size check and fails on
		// ownership instead, proving the limit is not off by one.
		ids := make([]uuid.UUID, MaxBatchSize)
		for i := range ids {
			ids[i] = uuid.New()
		}
		_, err := svc.BulkUpdate(context.Background(), owner, ids, patch)
		var invalid *InvalidIDsError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestBulkMutations_RejectWholeBatchOnAnyInvalidID(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	svc := NewMutationService(store, nil, nil)
	ids := ownedIDs(t, store, owner)

	var strangersID uuid.UUID
	for id, r := range store.receipts {
		if r.UserID == stranger {
			strangersID = id
		}
	}
	unknown := uuid.New()

	testCases := []struct {
		name string
		bad  uuid.UUID
	}{
		{name: "NonexistentID", bad: unknown},
		{name: "SomeoneElsesID", bad: strangersID},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			batch := append(append([]uuid.UUID{}, ids...), testCase.bad)

			_, err := svc.BulkDelete(context.Background(), owner, batch)
			var invalid *InvalidIDsError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, []uuid.UUID{testCase.bad}, invalid.IDs)

			// Nothing was deleted.
			assert.Len(t, ownedIDs(t, store, owner), len(ids))
		})
	}
}

func TestBulkDelete_RemovesOnlyOwnersRows(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	svc := NewMutationService(store, nil, nil)
	ids := ownedIDs(t, store, owner)

	res, err := svc.BulkDelete(context.Background(), owner, ids)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, len(ids), res.SuccessCount)
	assert.Empty(t, ownedIDs(t, store, owner))

	// The stranger's receipt survives.
	count, err := store.CountAll(context.Background(), stranger)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBulkMutations_BatchFailureBecomesResult(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	store.failWith = errors.New("deadlock detected")
	store.failOn = "UpdateByIDs"
	svc := NewMutationService(store, nil, nil)
	ids := ownedIDs(t, store, owner)

	res, err := svc.BulkUpdate(context.Background(), owner, ids, Update{Category: ptr("X")})
	require.NoError(t, err, "execution failures are reported in the result, not raised")

	assert.False(t, res.Success)
	assert.Equal(t, len(ids), res.ProcessedCount)
	assert.Zero(t, res.SuccessCount)
	assert.Equal(t, len(ids), res.ErrorCount)
	require.Len(t, res.Errors, len(ids))
	for i, ie := range res.Errors {
		assert.Equal(t, ids[i], ie.ReceiptID)
		assert.Equal(t, "deadlock detected", ie.Message)
	}
}

func TestBulkMutations_PreflightStorageFailureBecomesResult(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	store.failWith = errors.New("connection refused")
	store.failOn = "FetchOwnedIDs"
	svc := NewMutationService(store, nil, nil)
	ids := ownedIDs(t, store, owner)

	res, err := svc.BulkDelete(context.Background(), owner, ids)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, len(ids), res.ErrorCount)
}

func TestPrepareExport(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	svc := NewMutationService(store, nil, nil)
	ids := ownedIDs(t, store, owner)
	subset := ids[:2]

	res, err := svc.PrepareExport(context.Background(), owner, subset)
	require.NoError(t, err)

	assert.Len(t, res.Receipts, 2)
	assert.Equal(t, 2, res.FilteredCount)
	assert.Equal(t, 3, res.TotalCount)
	assert.Equal(t, subset, res.Applied.ReceiptIDs)
	assert.Nil(t, res.Applied.Filter)

	// Read-only: the rows are still there.
	assert.Len(t, ownedIDs(t, store, owner), 3)
}

func TestPrepareExport_InvalidIDRejectsBatch(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	svc := NewMutationService(store, nil, nil)
	ids := append(ownedIDs(t, store, owner), uuid.New())

	_, err := svc.PrepareExport(context.Background(), owner, ids)
	var invalid *InvalidIDsError
	require.ErrorAs(t, err, &invalid)
}

func TestPrepareExport_StorageFailureIsWrapped(t *testing.T) {
	t.Parallel()

	owner, stranger := uuid.New(), uuid.New()
	store := seedScenario(owner, stranger)
	store.failWith = errors.New("read timeout")
	store.failOn = "FetchByIDs"
	svc := NewMutationService(store, nil, nil)

	_, err := svc.PrepareExport(context.Background(), owner, ownedIDs(t, store, owner))
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EXPORT_FAILED", appErr.Code)
	assert.Equal(t, "failed to prepare export", appErr.Message)
}
