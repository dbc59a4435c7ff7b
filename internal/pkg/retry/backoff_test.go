package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetry(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "指数退避", cfg: DefaultConfig()},
		{
			name: "固定间隔",
			cfg:  Config{Type: "fixed", FixedInterval: &FixedIntervalConfig{MaxRetries: 3, Interval: 10}},
		},
		{name: "缺少配置", cfg: Config{Type: "fixed"}, wantErr: true},
		{name: "未知类型", cfg: Config{Type: "linear"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewRetry(tc.cfg)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func TestBackoff(t *testing.T) {
	t.Parallel()
	b, err := NewBackoff(Config{
		Type: "fixed",
		FixedInterval: &FixedIntervalConfig{
			MaxRetries: 2,
			Interval:   10,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, b.Next())
	assert.Equal(t, 10*time.Millisecond, b.Next())
	// 次数用完了也不会停下来
	assert.Equal(t, 10*time.Millisecond, b.Next())

	b.Reset()
	assert.Equal(t, 10*time.Millisecond, b.Next())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, b.Wait(ctx))
	assert.True(t, b.Wait(context.Background()))
}
