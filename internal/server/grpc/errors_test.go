package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	s := NewGRPCServer("", nil, nil, nil, nil)

	tests := []struct {
		err  error
		want codes.Code
	}{
		{fmt.Errorf("%w: too short", common.ErrorValidation), codes.InvalidArgument},
		{common.ErrorNotFound, codes.NotFound},
		{fmt.Errorf("user: %w", common.ErrorAlreadyExists), codes.AlreadyExists},
		{common.ErrorUnauthorized, codes.Unauthenticated},
		{common.ErrRefreshTokenExpired, codes.Unauthenticated},
		{common.ErrorForbidden, codes.PermissionDenied},
		{errors.New("connection reset"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(s.toStatus(context.Background(), tt.err)))
		})
	}
}

func TestToStatus_InternalHidesDetails(t *testing.T) {
	s := NewGRPCServer("", nil, nil, nil, nil)
	err := s.toStatus(context.Background(), errors.New("pq: password authentication failed"))
	assert.Equal(t, common.ErrorInternal.Error(), status.Convert(err).Message())
}
