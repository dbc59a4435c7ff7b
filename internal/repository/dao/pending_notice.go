package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

//go:generate mockgen -source=./pending_notice.go -package=daomocks -destination=./mocks/pending_notice.mock.go PendingNoticeDAO
type PendingNoticeDAO interface {
	// Insert 同一个接收者的同一条通知只会保存一份，重复插入视为成功
	Insert(ctx context.Context, pn PendingNotice) error
	// FindByReceiver 按照写入顺序返回
	FindByReceiver(ctx context.Context, receiverID int64, limit int) ([]PendingNotice, error)
	DeleteByIDs(ctx context.Context, receiverID int64, ids []uint64) error
	// DeleteBefore 删除 ctime 早于给定时间的记录，返回删除的行数
	DeleteBefore(ctx context.Context, ctime int64, limit int) (int64, error)
}

// PendingNotice 用户离线期间没能推送出去的通知
type PendingNotice struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement:false;comment:'雪花算法ID'"`
	ReceiverID int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:idx_receiver_notice,priority:1;comment:'接收者'"`
	NoticeID   int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:idx_receiver_notice,priority:2;comment:'通知ID'"`
	Payload    string `gorm:"type:TEXT;NOT NULL;comment:'通知视图，JSON'"`
	Ctime      int64  `gorm:"index:idx_ctime"`
	Utime      int64
}

type pendingNoticeDAO struct {
	db *egorm.Component
}

func NewPendingNoticeDAO(db *egorm.Component) PendingNoticeDAO {
	return &pendingNoticeDAO{
		db: db,
	}
}

func (d *pendingNoticeDAO) Insert(ctx context.Context, pn PendingNotice) error {
	now := time.Now().UnixMilli()
	pn.Ctime, pn.Utime = now, now
	err := d.db.WithContext(ctx).Create(&pn).Error
	if d.isUniqueConstraintError(err) {
		// 重复投递导致的，之前已经存过了
		return nil
	}
	return err
}

func (d *pendingNoticeDAO) isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (d *pendingNoticeDAO) FindByReceiver(ctx context.Context, receiverID int64, limit int) ([]PendingNotice, error) {
	var res []PendingNotice
	err := d.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("ctime ASC, id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *pendingNoticeDAO) DeleteByIDs(ctx context.Context, receiverID int64, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).
		Where("receiver_id = ? AND id IN ?", receiverID, ids).
		Delete(&PendingNotice{}).Error
}

func (d *pendingNoticeDAO) DeleteBefore(ctx context.Context, ctime int64, limit int) (int64, error) {
	res := d.db.WithContext(ctx).
		Where("ctime < ?", ctime).
		Limit(limit).
		Delete(&PendingNotice{})
	return res.RowsAffected, res.Error
}
