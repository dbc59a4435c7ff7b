// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package retry

import (
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

type Config struct {
	Type               string                    `yaml:"type"` // 重试策略
	FixedInterval      *FixedIntervalConfig      `yaml:"fixedInterval"`
	ExponentialBackoff *ExponentialBackoffConfig `yaml:"exponentialBackoff"`
}

type ExponentialBackoffConfig struct {
	// 初始重试间隔 单位ms
	InitialInterval int `yaml:"initialInterval"`
	// 最大重试间隔 单位ms
	MaxInterval int `yaml:"maxInterval"`
	// 最大重试次数
	MaxRetries int32 `yaml:"maxRetries"`
}

type FixedIntervalConfig struct {
	MaxRetries int32 `yaml:"maxRetries"`
	Interval   int   `yaml:"interval"`
}

// DefaultConfig 重新入队之后的退避，100ms 起步，最多等 5s
func DefaultConfig() Config {
	return Config{
		Type: "exponential",
		ExponentialBackoff: &ExponentialBackoffConfig{
			InitialInterval: 100,
			MaxInterval:     5000,
			MaxRetries:      10,
		},
	}
}

func NewRetry(cfg Config) (retry.Strategy, error) {
	switch cfg.Type {
	case "fixed":
		if cfg.FixedInterval == nil {
			return nil, fmt.Errorf("fixed 策略缺少配置")
		}
		return retry.NewFixedIntervalRetryStrategy(msToDuration(cfg.FixedInterval.Interval), cfg.FixedInterval.MaxRetries)
	case "exponential":
		if cfg.ExponentialBackoff == nil {
			return nil, fmt.Errorf("exponential 策略缺少配置")
		}
		return retry.NewExponentialBackoffRetryStrategy(msToDuration(cfg.ExponentialBackoff.InitialInterval), msToDuration(cfg.ExponentialBackoff.MaxInterval), cfg.ExponentialBackoff.MaxRetries)
	default:
		return nil, fmt.Errorf("unknown retry type: %s", cfg.Type)
	}
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
