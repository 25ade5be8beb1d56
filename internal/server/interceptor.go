package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/xyzruben/steward/internal/common"
)

// UnaryLogging stamps every RPC with a request id (honoring x-request-id
// metadata when the client sent one) and the requesting user id. Both
// travel in the context so the service layer can tag its own log lines,
// and the interceptor writes one completion line per call.
func UnaryLogging(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		ctx = common.WithRequestID(ctx, requestID(ctx))
		if r, ok := req.(interface{ GetUserId() string }); ok {
			ctx = common.WithUserID(ctx, r.GetUserId())
		}

		resp, err := handler(ctx, req)

		logger.Info("rpc completed",
			"method", info.FullMethod,
			"request_id", common.RequestIDFromContext(ctx),
			"user_id", common.UserIDFromContext(ctx),
			"code", status.Code(err).String(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}

func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get("x-request-id"); len(vals) > 0 && vals[0] != "" {
			return vals[0]
		}
	}
	return uuid.NewString()
}
