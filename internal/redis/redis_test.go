package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigOptions(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantDial time.Duration
	}{
		{name: "default dial timeout", cfg: Config{Addr: "localhost:6379"}, wantDial: 3 * time.Second},
		{name: "negative dial timeout", cfg: Config{Addr: "localhost:6379", DialTimeout: -time.Second}, wantDial: 3 * time.Second},
		{name: "configured", cfg: Config{Addr: "cache:6379", DB: 2, DialTimeout: 750 * time.Millisecond}, wantDial: 750 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.cfg.options()
			assert.Equal(t, tt.cfg.Addr, opts.Addr)
			assert.Equal(t, tt.cfg.DB, opts.DB)
			assert.Equal(t, "holidaze", opts.ClientName)
			assert.Equal(t, tt.wantDial, opts.DialTimeout)
		})
	}
}

func TestNewUnreachable(t *testing.T) {
	start := time.Now()

	client, err := New(context.Background(), Config{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond})
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Less(t, time.Since(start), 5*time.Second)
}
