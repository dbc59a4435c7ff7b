package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/repository/dao"
	daomocks "gitee.com/flycash/notice-delivery/internal/repository/dao/mocks"
	"github.com/sony/sonyflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIDGenerator() *sonyflake.Sonyflake {
	return sonyflake.NewSonyflake(sonyflake.Settings{
		MachineID: func() (uint16, error) {
			return 1, nil
		},
	})
}

func TestPendingRepository_Enqueue(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	d := daomocks.NewMockPendingNoticeDAO(ctrl)
	related := int64(7)
	view := domain.NoticeView{
		NoticeID:   100,
		ReceiverID: 42,
		Type:       domain.NoticeTypeTaskAssigned,
		Content:    "task assigned",
		RelatedID:  &related,
	}
	d.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, pn dao.PendingNotice) error {
		assert.NotZero(t, pn.ID)
		assert.Equal(t, int64(42), pn.ReceiverID)
		assert.Equal(t, int64(100), pn.NoticeID)
		assert.JSONEq(t, `{"noticeId":100,"receiverId":42,"noticeType":"TASK_ASSIGNED","title":"","content":"task assigned","senderName":"","relatedId":7,"createdTime":0,"unread":0}`, pn.Payload)
		return nil
	})

	repo := NewPendingRepository(d, newTestIDGenerator())
	require.NoError(t, repo.Enqueue(context.Background(), view))
}

func TestPendingRepository_Find(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(d *daomocks.MockPendingNoticeDAO)
		want    []domain.PendingNotice
		wantErr bool
	}{
		{
			name: "按顺序返回",
			mock: func(d *daomocks.MockPendingNoticeDAO) {
				d.EXPECT().FindByReceiver(gomock.Any(), int64(42), 10).Return([]dao.PendingNotice{
					{ID: 1, ReceiverID: 42, NoticeID: 100, Payload: `{"noticeId":100,"receiverId":42}`, Ctime: 1000},
					{ID: 2, ReceiverID: 42, NoticeID: 101, Payload: `{"noticeId":101,"receiverId":42,"noticeType":"BOGUS"}`, Ctime: 2000},
				}, nil)
			},
			want: []domain.PendingNotice{
				{ID: 1, View: domain.NoticeView{NoticeID: 100, ReceiverID: 42}, Ctime: time.UnixMilli(1000)},
				{ID: 2, View: domain.NoticeView{NoticeID: 101, ReceiverID: 42, Type: domain.NoticeTypeUnknown}, Ctime: time.UnixMilli(2000)},
			},
		},
		{
			name: "数据损坏",
			mock: func(d *daomocks.MockPendingNoticeDAO) {
				d.EXPECT().FindByReceiver(gomock.Any(), int64(42), 10).Return([]dao.PendingNotice{
					{ID: 1, ReceiverID: 42, NoticeID: 100, Payload: `{`},
				}, nil)
			},
			wantErr: true,
		},
		{
			name: "数据库错误",
			mock: func(d *daomocks.MockPendingNoticeDAO) {
				d.EXPECT().FindByReceiver(gomock.Any(), int64(42), 10).Return(nil, errors.New("mock db error"))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			d := daomocks.NewMockPendingNoticeDAO(ctrl)
			tc.mock(d)
			repo := NewPendingRepository(d, newTestIDGenerator())
			res, err := repo.Find(context.Background(), 42, 10)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestPendingRepository_DeleteAndPurge(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	d := daomocks.NewMockPendingNoticeDAO(ctrl)
	before := time.UnixMilli(5000)
	d.EXPECT().DeleteByIDs(gomock.Any(), int64(42), []uint64{1, 2}).Return(nil)
	d.EXPECT().DeleteBefore(gomock.Any(), int64(5000), 100).Return(int64(3), nil)

	repo := NewPendingRepository(d, newTestIDGenerator())
	require.NoError(t, repo.Delete(context.Background(), 42, PendingIDs([]domain.PendingNotice{{ID: 1}, {ID: 2}})...))
	cnt, err := repo.PurgeBefore(context.Background(), before, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
}
