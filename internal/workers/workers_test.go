// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Wait were called.
type mockWorker struct {
	runCount  int
	waitCount int
}

func (m *mockWorker) Run(context.Context) { m.runCount++ }
func (m *mockWorker) Wait()               { m.waitCount++ }

// fakeSweeper counts CleanupSessions calls.
type fakeSweeper struct {
	calls atomic.Int32
	err   error
}

func (f *fakeSweeper) CleanupSessions(context.Context) (int64, error) {
	f.calls.Add(1)
	return 1, f.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equalf(t, 1, w.runCount, "worker[%d] run", i)
		assert.Equalf(t, 1, w.waitCount, "worker[%d] wait", i)
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Wait()
}

func TestNewWorkers_RegistersSessionCleaner(t *testing.T) {
	ws := NewWorkers(&fakeSweeper{}, config.Workers{SessionCleanupInterval: time.Second}, logger.Nop())

	if assert.Len(t, ws.workers, 1) {
		cleaner, ok := ws.workers[0].(*SessionCleaner)
		assert.True(t, ok)
		assert.Equal(t, time.Second, cleaner.interval)
	}
}

// ── SessionCleaner ───────────────────────────────────────────────────────────

func TestSessionCleaner_SweepsUntilCancelled(t *testing.T) {
	sweeper := &fakeSweeper{}
	c := NewSessionCleaner(sweeper, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	c.Run(ctx)

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, time.Millisecond)

	cancel()
	c.Wait()

	stopped := sweeper.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, sweeper.calls.Load(), "no sweeps after Wait returned")
}

func TestSessionCleaner_KeepsRunningOnError(t *testing.T) {
	sweeper := &fakeSweeper{err: errors.New("db is down")}
	c := NewSessionCleaner(sweeper, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Run(ctx)

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestNewSessionCleaner_DefaultInterval(t *testing.T) {
	c := NewSessionCleaner(&fakeSweeper{}, 0, logger.Nop())

	assert.Equal(t, time.Minute, c.interval)
}
