package cache

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFailsWhenUnreachable(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := New(ctx, WithAddress(addr), WithDialTimeout(200*time.Millisecond))

	assert.Nil(t, c)
	assert.ErrorContains(t, err, "redis ping "+addr)
}

func TestKeyPrefix(t *testing.T) {
	c := &Cache{prefix: "talentbridge:"}
	assert.Equal(t, "talentbridge:reports:summary:all", c.Key("reports:summary:all"))

	c = &Cache{}
	assert.Equal(t, "reports:summary:all", c.Key("reports:summary:all"))
}
