package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketing/internal/constants"
	"marketing/internal/models"
)

// testClock - управляемые часы для проверки дат заявок и записей рекламы.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Set(date string) {
	t, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		panic(err)
	}
	c.now = t
}

func openTestStore(t *testing.T) (*Store, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	path := filepath.Join(t.TempDir(), "marketing.db")
	store, err := Open(context.Background(), DriverSQLite, path, WithClock(clock.Now))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store, clock
}

func seedClient(t *testing.T, s *Store, c models.NewClient) models.Client {
	t.Helper()
	if c.Source == "" {
		c.Source = constants.SOURCE_NONE
	}
	if c.AdChannel == "" {
		c.AdChannel = constants.NOT_SPECIFIED
	}
	id, err := s.AddClient(context.Background(), c)
	require.NoError(t, err)
	client, err := s.GetClient(context.Background(), id)
	require.NoError(t, err)
	return client
}

func seedService(t *testing.T, s *Store, title, price string) int64 {
	t.Helper()
	id, err := s.AddService(context.Background(), title, price)
	require.NoError(t, err)
	return id
}
