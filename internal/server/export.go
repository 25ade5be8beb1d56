package server

import (
	"context"
	"log/slog"

	"github.com/xyzruben/steward/constants"
	stewardv1 "github.com/xyzruben/steward/gen/proto/steward/v1"
	"github.com/xyzruben/steward/internal/bulkops"
	"github.com/xyzruben/steward/internal/common"
	"github.com/xyzruben/steward/internal/export"
)

// ExportServer validates the requested selection through the mutation
// service's preflight, then hands the records to the formatter.
type ExportServer struct {
	stewardv1.UnimplementedExportServiceServer
	mutations *bulkops.MutationService
	formatter *export.Formatter
	logger    *slog.Logger
}

func NewExportServer(mutations *bulkops.MutationService, formatter *export.Formatter, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{
		mutations: mutations,
		formatter: formatter,
		logger:    logger,
	}
}

func (s *ExportServer) ExportReceipts(ctx context.Context, req *stewardv1.ExportReceiptsRequest) (*stewardv1.ExportReceiptsResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	ids, err := parseIDList(req.GetReceiptIds())
	if err != nil {
		return nil, err
	}
	format, ok := constants.ParseExportFormat(req.GetFormat())
	if !ok {
		return nil, common.InvalidArgumentErrorf("format must be one of csv, json, pdf, xlsx")
	}

	result, err := s.mutations.PrepareExport(ctx, userID, ids)
	if err != nil {
		return nil, toStatusErr(s.logger, err)
	}

	var stats *bulkops.Stats
	if req.GetIncludeAnalytics() {
		stats = bulkops.SummarizeReceipts(result.Receipts)
	}

	payload, err := s.formatter.Format(result.Receipts, format, stats)
	if err != nil {
		s.logger.Error("export render failed", "user_id", userID, "format", req.GetFormat(), "error", err)
		return nil, common.InternalError("failed to render export")
	}

	return &stewardv1.ExportReceiptsResponse{
		Payload:     payload.Bytes,
		Filename:    payload.Filename,
		ContentType: payload.ContentType,
		Size:        int64(payload.Size),
	}, nil
}
