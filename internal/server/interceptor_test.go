package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/xyzruben/steward/internal/common"
)

type userIDReq struct{ userID string }

func (r userIDReq) GetUserId() string { return r.userID }

func TestUnaryLogging_StampsRequestAndUserID(t *testing.T) {
	t.Parallel()

	interceptor := UnaryLogging(nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/steward.v1.BulkService/FilterReceipts"}

	var seenRequestID, seenUserID string
	handler := func(ctx context.Context, req any) (any, error) {
		seenRequestID = common.RequestIDFromContext(ctx)
		seenUserID = common.UserIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := interceptor(context.Background(), userIDReq{userID: "u-123"}, info, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.NotEmpty(t, seenRequestID, "a request id is generated when the client sends none")
	assert.Equal(t, "u-123", seenUserID)
}

func TestUnaryLogging_HonorsClientRequestID(t *testing.T) {
	t.Parallel()

	interceptor := UnaryLogging(nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/steward.v1.BulkService/BulkDelete"}
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("x-request-id", "req-42"))

	handler := func(ctx context.Context, req any) (any, error) {
		return common.RequestIDFromContext(ctx), nil
	}

	resp, err := interceptor(ctx, struct{}{}, info, handler)
	require.NoError(t, err)
	assert.Equal(t, "req-42", resp)
}
