//go:build e2e

package redis

import (
	"fmt"
	"sync"
	"testing"

	"gitee.com/flycash/notice-delivery/internal/domain"
	"gitee.com/flycash/notice-delivery/internal/repository/cache"
	testioc "gitee.com/flycash/notice-delivery/internal/test/ioc"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

func TestNoticeCache(t *testing.T) {
	suite.Run(t, new(NoticeCacheTestSuite))
}

type NoticeCacheTestSuite struct {
	suite.Suite
	client *redis.Client
	cache  cache.NoticeCache
}

func (s *NoticeCacheTestSuite) SetupSuite() {
	s.client = testioc.InitRedis()
	s.cache = NewNoticeCache(s.client, 3)
}

func (s *NoticeCacheTestSuite) TearDownSuite() {
	s.client.FlushDB(s.T().Context())
	s.client.Close()
}

func (s *NoticeCacheTestSuite) SetupTest() {
	s.client.FlushDB(s.T().Context())
}

func (s *NoticeCacheTestSuite) TestProject() {
	ctx := s.T().Context()
	const receiverID = int64(42)

	for i := int64(1); i <= 5; i++ {
		unread, err := s.cache.Project(ctx, domain.NoticeView{
			NoticeID:   i,
			ReceiverID: receiverID,
			Type:       domain.NoticeTypeTaskAssigned,
			Content:    fmt.Sprintf("task %d", i),
		})
		s.NoError(err)
		s.Equal(i, unread)
	}

	unread, err := s.cache.Unread(ctx, receiverID)
	s.NoError(err)
	s.Equal(int64(5), unread)

	// 容量是 3，最新的在前面
	views, err := s.cache.Recent(ctx, receiverID, 10)
	s.NoError(err)
	s.Len(views, 3)
	s.Equal(int64(5), views[0].NoticeID)
	s.Equal(int64(4), views[1].NoticeID)
	s.Equal(int64(3), views[2].NoticeID)

	length, err := s.client.LLen(ctx, cache.RecentKey(receiverID)).Result()
	s.NoError(err)
	s.Equal(int64(3), length)
}

func (s *NoticeCacheTestSuite) TestProjectConcurrently() {
	ctx := s.T().Context()
	const (
		receiverID = int64(43)
		n          = 50
	)
	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := s.cache.Project(ctx, domain.NoticeView{NoticeID: id, ReceiverID: receiverID})
			s.NoError(err)
		}(int64(i))
	}
	wg.Wait()

	unread, err := s.cache.Unread(ctx, receiverID)
	s.NoError(err)
	s.Equal(int64(n), unread)

	views, err := s.cache.Recent(ctx, receiverID, 0)
	s.NoError(err)
	s.Len(views, 3)
}

func (s *NoticeCacheTestSuite) TestUnreadAndReset() {
	ctx := s.T().Context()
	const receiverID = int64(44)

	unread, err := s.cache.Unread(ctx, receiverID)
	s.NoError(err)
	s.Zero(unread)

	_, err = s.cache.Project(ctx, domain.NoticeView{NoticeID: 1, ReceiverID: receiverID})
	s.NoError(err)
	s.NoError(s.cache.ResetUnread(ctx, receiverID))

	unread, err = s.cache.Unread(ctx, receiverID)
	s.NoError(err)
	s.Zero(unread)

	// 重置未读数不影响最近列表
	views, err := s.cache.Recent(ctx, receiverID, 0)
	s.NoError(err)
	s.Len(views, 1)
}
