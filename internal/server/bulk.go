package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	stewardv1 "github.com/xyzruben/steward/gen/proto/steward/v1"
	"github.com/xyzruben/steward/internal/bulkops"
	"github.com/xyzruben/steward/internal/common"
	"github.com/xyzruben/steward/internal/utils"
)

// BulkServer exposes the bulk query and mutation services over gRPC. It
// owns request parsing and the mapping of domain errors to status codes;
// storage error text never crosses this boundary.
type BulkServer struct {
	stewardv1.UnimplementedBulkServiceServer
	queries   *bulkops.QueryService
	mutations *bulkops.MutationService
	logger    *slog.Logger
}

func NewBulkServer(queries *bulkops.QueryService, mutations *bulkops.MutationService, logger *slog.Logger) *BulkServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &BulkServer{
		queries:   queries,
		mutations: mutations,
		logger:    logger,
	}
}

func (s *BulkServer) FilterReceipts(ctx context.Context, req *stewardv1.FilterReceiptsRequest) (*stewardv1.FilterReceiptsResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	filter, err := filterFromPB(req.GetFilter())
	if err != nil {
		return nil, err
	}

	result, err := s.queries.FilterReceipts(ctx, userID, filter)
	if err != nil {
		return nil, toStatusErr(s.logger, err)
	}

	out := make([]*stewardv1.Receipt, 0, len(result.Receipts))
	for _, r := range result.Receipts {
		out = append(out, utils.ToPBReceipt(r))
	}
	return &stewardv1.FilterReceiptsResponse{
		Receipts:      out,
		TotalCount:    int32(result.TotalCount),
		FilteredCount: int32(result.FilteredCount),
	}, nil
}

func (s *BulkServer) GetFilteredReceiptIds(ctx context.Context, req *stewardv1.GetFilteredReceiptIdsRequest) (*stewardv1.GetFilteredReceiptIdsResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	filter, err := filterFromPB(req.GetFilter())
	if err != nil {
		return nil, err
	}

	ids, err := s.queries.FilterReceiptIDs(ctx, userID, filter)
	if err != nil {
		return nil, toStatusErr(s.logger, err)
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return &stewardv1.GetFilteredReceiptIdsResponse{ReceiptIds: out}, nil
}

func (s *BulkServer) GetFilterOptions(ctx context.Context, req *stewardv1.GetFilterOptionsRequest) (*stewardv1.GetFilterOptionsResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}

	opts, err := s.queries.FilterOptions(ctx, userID)
	if err != nil {
		return nil, toStatusErr(s.logger, err)
	}

	return &stewardv1.GetFilterOptionsResponse{
		Categories: opts.Categories,
		Merchants:  opts.Merchants,
		DateMin:    opts.DateMin.Format("2006-01-02"),
		DateMax:    opts.DateMax.Format("2006-01-02"),
		AmountMin:  opts.AmountMin,
		AmountMax:  opts.AmountMax,
	}, nil
}

func (s *BulkServer) GetReceiptStats(ctx context.Context, req *stewardv1.GetReceiptStatsRequest) (*stewardv1.GetReceiptStatsResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}

	var filterPtr *bulkops.Filter
	if req.GetFilter() != nil {
		filter, err := filterFromPB(req.GetFilter())
		if err != nil {
			return nil, err
		}
		filterPtr = &filter
	}

	stats, err := s.queries.ReceiptStats(ctx, userID, filterPtr)
	if err != nil {
		return nil, toStatusErr(s.logger, err)
	}

	byCategory := make([]*stewardv1.CategoryStat, len(stats.ByCategory))
	for i, c := range stats.ByCategory {
		byCategory[i] = &stewardv1.CategoryStat{Category: c.Category, Count: int32(c.Count), Total: c.Total}
	}
	byMonth := make([]*stewardv1.MonthStat, len(stats.ByMonth))
	for i, m := range stats.ByMonth {
		byMonth[i] = &stewardv1.MonthStat{Month: m.Month.Format("2006-01"), Count: int32(m.Count), Total: m.Total}
	}
	return &stewardv1.GetReceiptStatsResponse{
		ReceiptCount:  int32(stats.ReceiptCount),
		TotalAmount:   stats.TotalAmount,
		AverageAmount: stats.AverageAmount,
		ByCategory:    byCategory,
		ByMonth:       byMonth,
	}, nil
}

func (s *BulkServer) BulkUpdate(ctx context.Context, req *stewardv1.BulkUpdateRequest) (*stewardv1.BulkUpdateResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	ids, err := parseIDList(req.GetReceiptIds())
	if err != nil {
		return nil, err
	}

	patch := bulkops.Update{
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Merchant:    req.Merchant,
		Summary:     req.Summary,
	}
	result, err := s.mutations.BulkUpdate(ctx, userID, ids, patch)
	if err != nil {
		return nil, toStatusErr(s.logger, err)
	}
	return &stewardv1.BulkUpdateResponse{Result: resultToPB(result)}, nil
}

func (s *BulkServer) BulkDelete(ctx context.Context, req *stewardv1.BulkDeleteRequest) (*stewardv1.BulkDeleteResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	ids, err := parseIDList(req.GetReceiptIds())
	if err != nil {
		return nil, err
	}

	result, err := s.mutations.BulkDelete(ctx, userID, ids)
	if err != nil {
		return nil, toStatusErr(s.logger, err)
	}
	return &stewardv1.BulkDeleteResponse{Result: resultToPB(result)}, nil
}

// toStatusErr maps domain errors onto gRPC codes. Validation, batch-size
// and id rejections carry their own message; anything else surfaces only
// the generic domain message, with the cause already logged upstream.
func toStatusErr(logger *slog.Logger, err error) error {
	var (
		verrs  *bulkops.ValidationErrors
		sizeE  *bulkops.BatchSizeError
		idsE   *bulkops.InvalidIDsError
		appErr *common.AppError
	)
	switch {
	case errors.As(err, &verrs), errors.As(err, &sizeE), errors.As(err, &idsE):
		return common.InvalidArgumentError(err.Error())
	case errors.As(err, &appErr):
		return common.InternalError(appErr.Message)
	default:
		logger.Error("unexpected error", "error", err)
		return common.InternalError("internal error")
	}
}

func parseUserID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, common.InvalidArgumentError("user_id is required")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("user_id must be a UUID")
	}
	return userID, nil
}

func parseIDList(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("receipt_ids[%d] must be a UUID", i)
		}
		ids[i] = id
	}
	return ids, nil
}

func filterFromPB(pb *stewardv1.ReceiptFilter) (bulkops.Filter, error) {
	var f bulkops.Filter
	if pb == nil {
		return f, nil
	}

	if ds := strings.TrimSpace(pb.GetDateStart()); ds != "" {
		start, err := utils.ParseYMD(ds)
		if err != nil {
			return f, common.InvalidArgumentError("filter.date_start invalid (YYYY-MM-DD)")
		}
		f.DateRange = &bulkops.DateRange{Start: &start}
	}
	if de := strings.TrimSpace(pb.GetDateEnd()); de != "" {
		end, err := utils.ParseYMD(de)
		if err != nil {
			return f, common.InvalidArgumentError("filter.date_end invalid (YYYY-MM-DD)")
		}
		if f.DateRange == nil {
			f.DateRange = &bulkops.DateRange{}
		}
		f.DateRange.End = &end
	}
	if pb.AmountMin != nil || pb.AmountMax != nil {
		f.AmountRange = &bulkops.AmountRange{Min: pb.AmountMin, Max: pb.AmountMax}
	}
	if pb.ConfidenceMin != nil || pb.ConfidenceMax != nil {
		f.ConfidenceScore = &bulkops.ScoreRange{Min: pb.ConfidenceMin, Max: pb.ConfidenceMax}
	}
	f.Categories = pb.GetCategories()
	f.Merchants = pb.GetMerchants()
	f.HasSummary = pb.HasSummary
	f.SearchQuery = pb.GetSearchQuery()
	return f, nil
}

func resultToPB(r *bulkops.OperationResult) *stewardv1.BulkOperationResult {
	errs := make([]*stewardv1.OperationError, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = &stewardv1.OperationError{ReceiptId: e.ReceiptID.String(), Error: e.Message}
	}
	return &stewardv1.BulkOperationResult{
		Success:        r.Success,
		ProcessedCount: int32(r.ProcessedCount),
		SuccessCount:   int32(r.SuccessCount),
		ErrorCount:     int32(r.ErrorCount),
		Errors:         errs,
		OperationId:    r.OperationID,
		DurationMs:     r.Duration.Milliseconds(),
	}
}
