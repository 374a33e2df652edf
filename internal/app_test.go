package internal

import (
	"context"
	"drinkdays/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_Addr(t *testing.T) {
	f := newRouteFixture(t, testutil.NewMemoryKV())
	assert.Equal(t, "127.0.0.1:0", f.app.WebServer.Addr)
}

func TestApp_RunStopsOnContextCancel(t *testing.T) {
	kv := testutil.NewMemoryKV()
	kv.Put("drinkdays_records", `[{"date":"2024-05-01","drank":false}]`)
	f := newRouteFixture(t, kv)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.app.Run(ctx) }()

	require.Eventually(t, func() bool { return f.journal.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(7 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.Equal(t, 1, kv.SetCount("drinkdays_records"), "legacy payload migrated on restore")
	assert.True(t, f.app.compressor.(*testutil.MockCompressor).Closed)
}

func TestApp_RunServesReadOnlyAfterCorruptRestore(t *testing.T) {
	kv := testutil.NewMemoryKV()
	kv.Put("drinkdays_records", "oops")
	f := newRouteFixture(t, kv)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.app.Run(ctx) }()

	require.Eventually(t, f.journal.ReadOnly, 2*time.Second, 10*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}
