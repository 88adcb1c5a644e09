package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	require.NotNil(t, client)

	// Verify tasks database was created
	tasksDBPath := filepath.Join(tmpDir, "test-tasks.db")
	_, err = os.Stat(tasksDBPath)
	assert.NoError(t, err, "tasks database should be created")

	err = client.Close()
	assert.NoError(t, err)
}

func TestClientStartStop(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go client.Start(ctx)

	// Give it time to start
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	success := client.Stop(stopCtx)
	assert.True(t, success, "stop should succeed gracefully")
}

type fakeCleaner struct {
	retention time.Duration
	deleted   int64
	err       error
}

func (f *fakeCleaner) DeleteOldEvents(retention time.Duration) (int64, error) {
	f.retention = retention
	return f.deleted, f.err
}

type fakeRecorder struct {
	deleted       int64
	retentionDays int
	err           error
	called        bool
}

func (f *fakeRecorder) LogCleanup(deleted int64, retentionDays int, err error) {
	f.called = true
	f.deleted = deleted
	f.retentionDays = retentionDays
	f.err = err
}

func TestCleanupAuditEventsProcessor(t *testing.T) {
	cleaner := &fakeCleaner{deleted: 5}
	recorder := &fakeRecorder{}
	processor := CleanupAuditEventsProcessor(cleaner, recorder)

	err := processor(context.Background(), CleanupAuditEventsTask{RetentionDays: 7})
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, cleaner.retention)
	assert.True(t, recorder.called)
	assert.Equal(t, int64(5), recorder.deleted)
	assert.Equal(t, 7, recorder.retentionDays)
	assert.NoError(t, recorder.err)
}

func TestCleanupAuditEventsProcessorDefaultsRetention(t *testing.T) {
	cleaner := &fakeCleaner{}
	processor := CleanupAuditEventsProcessor(cleaner, nil)

	err := processor(context.Background(), CleanupAuditEventsTask{})
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, cleaner.retention)
}

func TestCleanupAuditEventsProcessorPropagatesError(t *testing.T) {
	cleaner := &fakeCleaner{err: errors.New("db locked")}
	recorder := &fakeRecorder{}
	processor := CleanupAuditEventsProcessor(cleaner, recorder)

	err := processor(context.Background(), CleanupAuditEventsTask{RetentionDays: 30})
	require.Error(t, err)
	assert.True(t, recorder.called)
	assert.Error(t, recorder.err)
}

func TestCleanupAuditEventsProcessorNilCleaner(t *testing.T) {
	processor := CleanupAuditEventsProcessor(nil, nil)
	err := processor(context.Background(), CleanupAuditEventsTask{RetentionDays: 30})
	assert.Error(t, err)
}

func TestCleanupAuditEventsTaskConfig(t *testing.T) {
	cfg := CleanupAuditEventsTask{}.Config()

	assert.Equal(t, "cleanup_audit_events", cfg.Name)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}
