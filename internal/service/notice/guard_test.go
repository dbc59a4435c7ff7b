package notice

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/notice-delivery/internal/errs"
	idemmocks "gitee.com/flycash/notice-delivery/internal/pkg/idempotent/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGuard_Claim(t *testing.T) {
	t.Parallel()
	g := newLocalGuard()
	ctx := context.Background()

	ok, err := g.Claim(ctx, 100, 42)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Claim(ctx, 100, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	// 同一条通知发给不同的人互不影响
	ok, err = g.Claim(ctx, 100, 43)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, g.Release(ctx, 100, 42))
	ok, err = g.Claim(ctx, 100, 42)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGuard_StoreError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := idemmocks.NewMockIdempotencyService(ctrl)
	svc.EXPECT().Claim(gomock.Any(), "notice:idempotent:1:2").Return(false, errors.New("i/o timeout"))
	svc.EXPECT().Release(gomock.Any(), "notice:idempotent:1:2").Return(errors.New("i/o timeout"))

	g := NewGuard(svc)
	_, err := g.Claim(context.Background(), 1, 2)
	assert.ErrorIs(t, err, errs.ErrIdempotencyUnavailable)
	assert.ErrorIs(t, g.Release(context.Background(), 1, 2), errs.ErrIdempotencyUnavailable)
}
