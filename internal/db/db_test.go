package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaSnapshot(t *testing.T, s *Store) []string {
	t.Helper()
	rows, err := s.sqlDB.Query(`SELECT name || ':' || sql FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var line string
		require.NoError(t, rows.Scan(&line))
		out = append(out, line)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestOpen_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, "mysql", "whatever")
	assert.Error(t, err)

	_, err = Open(ctx, DriverSQLite, "   ")
	assert.Error(t, err)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	before := schemaSnapshot(t, s)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.EnsureSchema(ctx))
	}
	after := schemaSnapshot(t, s)

	assert.Equal(t, before, after)
	joined := ""
	for _, line := range after {
		joined += line + "\n"
	}
	for _, table := range []string{"clients:", "services:", "orders:", "ad_stats:"} {
		assert.Contains(t, joined, table)
	}
}

func TestEnsureSchema_KeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	_, err = s.AddService(ctx, "Создание лонгрида", "200")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer s.Close()

	services, err := s.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Создание лонгрида", services[0].Title)
}

func TestListings_EmptyTables(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	clients, err := s.ListClients(ctx)
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)

	services, err := s.ListServices(ctx)
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	campaigns, err := s.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.NotNil(t, campaigns)
	assert.Empty(t, campaigns)

	channels, err := s.ListAdChannels(ctx)
	require.NoError(t, err)
	assert.NotNil(t, channels)
	assert.Empty(t, channels)
}

func TestClose_NilSafe(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
}
