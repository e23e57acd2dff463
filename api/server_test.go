package api

import (
	"testing"
	"time"

	"github.com/learningmode/video-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerAppliesConfiguredTimeouts(t *testing.T) {
	server := NewServer("127.0.0.1:8080", config.ServerConfig{
		ReadTimeout:    45 * time.Second,
		WriteTimeout:   90 * time.Second,
		MaxHeaderBytes: 2048,
	})

	require.NotNil(t, server.httpServer)
	assert.Equal(t, "127.0.0.1:8080", server.httpServer.Addr)
	assert.Equal(t, 45*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 90*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 2048, server.httpServer.MaxHeaderBytes)
}

func TestNewServerDefaultsUnsetTimeouts(t *testing.T) {
	server := NewServer("127.0.0.1:8080", config.ServerConfig{})

	assert.Equal(t, 30*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 30*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 1<<20, server.httpServer.MaxHeaderBytes)
}
