package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service sentinels to gRPC status codes. Anything unknown is
// logged and reported as Internal without details.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, common.ErrorAlreadyExists.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, common.ErrorForbidden.Error())
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
