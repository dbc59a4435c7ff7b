package ioc

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gitee.com/flycash/notice-delivery/internal/repository/dao"
)

const dsn = "root:root@tcp(localhost:13316)/notice?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=True&loc=Local&timeout=1s&readTimeout=3s&writeTimeout=3s&multiStatements=true"

var (
	db         *egorm.Component
	dbInitOnce sync.Once
)

func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForDBSetup 重试失败......")
		}
		time.Sleep(next)
	}
}

// InitDB 连接测试库并建表，多次调用返回同一个实例
func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		WaitForDBSetup(dsn)
		gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			panic(fmt.Errorf("数据库连接失败: %w", err))
		}
		if err = dao.InitTables(gdb); err != nil {
			panic(err)
		}
		db = gdb
	})
	return db
}
