package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOkHealthChecker(t *testing.T) {
	hc := NewOkHealthChecker()
	assert.True(t, hc.Healthy(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, hc.Healthy(ctx))
}
