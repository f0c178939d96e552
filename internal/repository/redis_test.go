package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitRedis_Unreachable(t *testing.T) {
	_, err := InitRedis(context.Background(), "localhost:1", "", 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}

func TestInitRedis_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := InitRedis(ctx, "10.255.255.1:6379", "", 0)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}
