package ioc

import (
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"

	"gitee.com/flycash/notice-delivery/internal/repository/dao"
)

func InitDB() *egorm.Component {
	db := egorm.Load("mysql").Build()
	// 线上的表结构由 DBA 管理，可以关掉
	if econf.GetBool("mysql.disableAutoMigrate") {
		return db
	}
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
