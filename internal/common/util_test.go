package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	for _, n := range []int{0, 1, 16, 32} {
		t.Run(fmt.Sprintf("size=%d", n), func(t *testing.T) {
			s, err := MakeRandHexString(n)
			require.NoError(t, err)
			assert.Len(t, s, n*2)
			_, err = hex.DecodeString(s)
			assert.NoError(t, err)
		})
	}
}

func TestGenerateRandByteArray_Length(t *testing.T) {
	a := GenerateRandByteArray(24)
	b := GenerateRandByteArray(24)
	require.Len(t, a, 24)
	require.Len(t, b, 24)
	if string(a) == string(b) {
		t.Logf("warning: two random buffers are identical; extremely unlikely")
	}
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		ErrorNotFound, ErrorAlreadyExists, ErrorInternal, ErrorUnauthorized,
		ErrorForbidden, ErrorValidation, ErrInvalidToken, ErrTokenExpired, ErrRefreshTokenExpired,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
	}
	wrapped := fmt.Errorf("lookup: %w", ErrorNotFound)
	assert.ErrorIs(t, wrapped, ErrorNotFound)
}
