package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitIDGenerator() *sonyflake.Sonyflake {
	type Config struct {
		// 多实例部署的时候每个实例不一样
		MachineID uint16 `yaml:"machineId"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("sonyflake", &cfg); err != nil {
		panic(err)
	}
	settings := sonyflake.Settings{
		StartTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if cfg.MachineID != 0 {
		settings.MachineID = func() (uint16, error) {
			return cfg.MachineID, nil
		}
	}
	sf := sonyflake.NewSonyflake(settings)
	if sf == nil {
		panic("初始化 sonyflake 失败")
	}
	return sf
}
