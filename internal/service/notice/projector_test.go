package notice

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/errs"
	cachemocks "gitee.com/flycash/notice-delivery/internal/repository/cache/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProjector_Apply(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := cachemocks.NewMockNoticeCache(ctrl)
	c.EXPECT().Project(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, view domain.NoticeView) (int64, error) {
		assert.Equal(t, int64(0), view.Unread)
		assert.Equal(t, int64(42), view.ReceiverID)
		return 5, nil
	})

	view, err := NewProjector(c).Apply(context.Background(), 42, testNotice())
	require.NoError(t, err)
	assert.Equal(t, int64(5), view.Unread)
	assert.Equal(t, int64(100), view.NoticeID)
	assert.Equal(t, int64(7), *view.RelatedID)
}

func TestProjector_ApplyError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := cachemocks.NewMockNoticeCache(ctrl)
	c.EXPECT().Project(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))
	_, err := NewProjector(c).Apply(context.Background(), 42, testNotice())
	assert.ErrorIs(t, err, errs.ErrCacheUnavailable)
}

func TestProjector_Summary(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recent := []domain.NoticeView{testNotice().View(2), testNotice().View(1)}
	c := cachemocks.NewMockNoticeCache(ctrl)
	c.EXPECT().Unread(gomock.Any(), int64(42)).Return(int64(2), nil)
	c.EXPECT().Recent(gomock.Any(), int64(42), 20).Return(recent, nil)
	c.EXPECT().ResetUnread(gomock.Any(), int64(42)).Return(nil)

	p := NewProjector(c)
	unread, got, err := p.Summary(context.Background(), 42, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)
	assert.Equal(t, recent, got)
	assert.NoError(t, p.MarkAllRead(context.Background(), 42))
}
