package database

import (
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/api/config"
)

func TestNewRedisDB(t *testing.T) {
	mr := miniredis.RunT(t)
	log, hook := test.NewNullLogger()

	client, err := NewRedisDB("redis://"+mr.Addr(), log)
	require.NoError(t, err)
	require.NotNil(t, client.Client)

	client.Close()
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "Redis connection closed", hook.LastEntry().Message)
}

func TestNewRedisDB_InvalidURL(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := NewRedisDB("invalid://url", log)
	assert.ErrorContains(t, err, "invalid redis URL")
}

func TestNewPostgresDB_EmptyURL(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := NewPostgresDB("", log)
	assert.Error(t, err)
}

func TestNewClickHouseDB_MissingSettings(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := NewClickHouseDB(config.ClickHouse{Host: "localhost"}, log)
	assert.Error(t, err)
}

func TestNewClickHouseDB_PingFailure(t *testing.T) {
	// Reserve a port and release it so nothing is listening there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	log, hook := test.NewNullLogger()
	client, err := NewClickHouseDB(config.ClickHouse{Host: "127.0.0.1", NativePort: port, DBName: "default"}, log)

	assert.Nil(t, client)
	assert.ErrorContains(t, err, "failed to ping ClickHouse")
	assert.Empty(t, hook.AllEntries())
}
