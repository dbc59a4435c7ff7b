package notice

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/errs"
	repomocks "gitee.com/flycash/notice-delivery/internal/repository/mocks"
	"gitee.com/flycash/notice-delivery/internal/service/push"
	pushmocks "gitee.com/flycash/notice-delivery/internal/service/push/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRouter_Deliver(t *testing.T) {
	t.Parallel()
	view := testNotice().View(1)
	testCases := []struct {
		name   string
		online bool
		mock   func(ch *pushmocks.MockChannel, repo *repomocks.MockPendingRepository)

		wantOutcome domain.DeliveryOutcome
		wantErr     error
	}{
		{
			name:   "推送成功",
			online: true,
			mock: func(ch *pushmocks.MockChannel, _ *repomocks.MockPendingRepository) {
				ch.EXPECT().Send(gomock.Any(), push.NewNoticeMessage(view)).Return(nil)
			},
			wantOutcome: domain.DeliveryOutcomePushed,
		},
		{
			name:   "推送失败",
			online: true,
			mock: func(ch *pushmocks.MockChannel, repo *repomocks.MockPendingRepository) {
				ch.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errs.ErrChannelClosed)
				repo.EXPECT().Enqueue(gomock.Any(), view).Return(nil)
			},
			wantOutcome: domain.DeliveryOutcomeQueued,
		},
		{
			name: "不在线",
			mock: func(_ *pushmocks.MockChannel, repo *repomocks.MockPendingRepository) {
				repo.EXPECT().Enqueue(gomock.Any(), view).Return(nil)
			},
			wantOutcome: domain.DeliveryOutcomeQueued,
		},
		{
			name: "离线存储失败",
			mock: func(_ *pushmocks.MockChannel, repo *repomocks.MockPendingRepository) {
				repo.EXPECT().Enqueue(gomock.Any(), view).Return(errors.New("db down"))
			},
			wantErr: errs.ErrOfflineStoreUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			registry := push.NewRegistry()
			var ch *pushmocks.MockChannel
			if tc.online {
				ch = newOnlineChannel(ctrl, registry, 42)
			}
			repo := repomocks.NewMockPendingRepository(ctrl)
			tc.mock(ch, repo)

			outcome, err := NewRouter(registry, repo).Deliver(context.Background(), 42, view)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantOutcome, outcome)
		})
	}
}

func pendingNotices(ids ...uint64) []domain.PendingNotice {
	res := make([]domain.PendingNotice, 0, len(ids))
	for _, id := range ids {
		view := testNotice().View(int64(id))
		view.NoticeID = int64(id)
		res = append(res, domain.PendingNotice{ID: id, View: view})
	}
	return res
}

func TestRouter_Drain(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		mock func(ch *pushmocks.MockChannel, repo *repomocks.MockPendingRepository)

		wantCnt int
		wantErr error
	}{
		{
			name: "没有离线通知",
			mock: func(_ *pushmocks.MockChannel, repo *repomocks.MockPendingRepository) {
				repo.EXPECT().Find(gomock.Any(), int64(42), 2).Return(nil, nil)
			},
		},
		{
			name: "分批推送",
			mock: func(ch *pushmocks.MockChannel, repo *repomocks.MockPendingRepository) {
				gomock.InOrder(
					repo.EXPECT().Find(gomock.Any(), int64(42), 2).Return(pendingNotices(1, 2), nil),
					ch.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2),
					repo.EXPECT().Delete(gomock.Any(), int64(42), uint64(1), uint64(2)).Return(nil),
					repo.EXPECT().Find(gomock.Any(), int64(42), 2).Return(pendingNotices(3), nil),
					ch.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
					repo.EXPECT().Delete(gomock.Any(), int64(42), uint64(3)).Return(nil),
				)
			},
			wantCnt: 3,
		},
		{
			name: "推送中途失败，剩下的保留",
			mock: func(ch *pushmocks.MockChannel, repo *repomocks.MockPendingRepository) {
				gomock.InOrder(
					repo.EXPECT().Find(gomock.Any(), int64(42), 2).Return(pendingNotices(1, 2), nil),
					ch.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
					ch.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errs.ErrChannelClosed),
					repo.EXPECT().Delete(gomock.Any(), int64(42), uint64(1)).Return(nil),
				)
			},
			wantCnt: 1,
			wantErr: errs.ErrChannelClosed,
		},
		{
			name: "第一条就失败",
			mock: func(ch *pushmocks.MockChannel, repo *repomocks.MockPendingRepository) {
				repo.EXPECT().Find(gomock.Any(), int64(42), 2).Return(pendingNotices(1, 2), nil)
				ch.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errs.ErrChannelClosed)
			},
			wantErr: errs.ErrChannelClosed,
		},
		{
			name: "查询失败",
			mock: func(_ *pushmocks.MockChannel, repo *repomocks.MockPendingRepository) {
				repo.EXPECT().Find(gomock.Any(), int64(42), 2).Return(nil, errors.New("db down"))
			},
			wantErr: errs.ErrOfflineStoreUnavailable,
		},
		{
			name: "删除失败",
			mock: func(ch *pushmocks.MockChannel, repo *repomocks.MockPendingRepository) {
				repo.EXPECT().Find(gomock.Any(), int64(42), 2).Return(pendingNotices(1), nil)
				ch.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Delete(gomock.Any(), int64(42), uint64(1)).Return(errors.New("db down"))
			},
			wantCnt: 1,
			wantErr: errs.ErrOfflineStoreUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ch := pushmocks.NewMockChannel(ctrl)
			repo := repomocks.NewMockPendingRepository(ctrl)
			tc.mock(ch, repo)

			r := NewRouter(push.NewRegistry(), repo)
			r.drainBatchSize = 2
			cnt, err := r.Drain(context.Background(), 42, ch)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantCnt, cnt)
		})
	}
}
