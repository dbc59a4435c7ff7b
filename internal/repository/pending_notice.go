package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/sony/sonyflake"
)

//go:generate mockgen -source=./pending_notice.go -package=repomocks -destination=./mocks/pending_notice.mock.go PendingRepository
type PendingRepository interface {
	// Enqueue 保存一条待投递的通知，同一个接收者的同一条通知重复保存是幂等的
	Enqueue(ctx context.Context, view domain.NoticeView) error
	// Find 按照保存的先后顺序返回
	Find(ctx context.Context, receiverID int64, limit int) ([]domain.PendingNotice, error)
	Delete(ctx context.Context, receiverID int64, ids ...uint64) error
	// PurgeBefore 清理早于 t 的记录
	PurgeBefore(ctx context.Context, t time.Time, limit int) (int64, error)
}

type pendingRepository struct {
	dao         dao.PendingNoticeDAO
	idGenerator *sonyflake.Sonyflake
}

func NewPendingRepository(d dao.PendingNoticeDAO, idGenerator *sonyflake.Sonyflake) PendingRepository {
	return &pendingRepository{
		dao:         d,
		idGenerator: idGenerator,
	}
}

func (r *pendingRepository) Enqueue(ctx context.Context, view domain.NoticeView) error {
	id, err := r.idGenerator.NextID()
	if err != nil {
		return fmt.Errorf("生成离线通知ID失败 %w", err)
	}
	payload, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("序列化通知视图失败 %w", err)
	}
	return r.dao.Insert(ctx, dao.PendingNotice{
		ID:         id,
		ReceiverID: view.ReceiverID,
		NoticeID:   view.NoticeID,
		Payload:    string(payload),
	})
}

func (r *pendingRepository) Find(ctx context.Context, receiverID int64, limit int) ([]domain.PendingNotice, error) {
	entities, err := r.dao.FindByReceiver(ctx, receiverID, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.PendingNotice, 0, len(entities))
	for i := range entities {
		pn, err1 := r.toDomain(entities[i])
		if err1 != nil {
			return nil, err1
		}
		res = append(res, pn)
	}
	return res, nil
}

func (r *pendingRepository) Delete(ctx context.Context, receiverID int64, ids ...uint64) error {
	return r.dao.DeleteByIDs(ctx, receiverID, ids)
}

func (r *pendingRepository) PurgeBefore(ctx context.Context, t time.Time, limit int) (int64, error) {
	return r.dao.DeleteBefore(ctx, t.UnixMilli(), limit)
}

func (r *pendingRepository) toDomain(entity dao.PendingNotice) (domain.PendingNotice, error) {
	var view domain.NoticeView
	if err := json.Unmarshal([]byte(entity.Payload), &view); err != nil {
		return domain.PendingNotice{}, fmt.Errorf("反序列化离线通知失败 id=%d %w", entity.ID, err)
	}
	return domain.PendingNotice{
		ID:    entity.ID,
		View:  view,
		Ctime: time.UnixMilli(entity.Ctime),
	}, nil
}

// PendingIDs 方便批量删除
func PendingIDs(pns []domain.PendingNotice) []uint64 {
	return slice.Map(pns, func(_ int, src domain.PendingNotice) uint64 {
		return src.ID
	})
}
