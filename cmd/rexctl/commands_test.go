package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/rexfit/internal/catalog"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/internal/repository"
	"github.com/limbo/rexfit/internal/service"
	"github.com/limbo/rexfit/internal/tracker"
	"github.com/limbo/rexfit/pkg/cleanup"
	"github.com/limbo/rexfit/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintStats(t *testing.T) {
	repo, err := repository.NewBadgerSnapshotRepo(repository.InMemoryBadgerConfig())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	now := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)
	svc := service.NewTrackerService(repo,
		service.WithClock(func() time.Time { return now }),
		service.WithLocation(time.UTC),
	)
	ctx := context.Background()
	_, err = svc.SaveMood(ctx, &service.MoodRequest{Mood: entity.MoodGood})
	require.NoError(t, err)
	_, err = svc.SetUserName(ctx, &service.NameRequest{Name: "Sam"})
	require.NoError(t, err)
	insp := service.NewInspector(repo,
		service.WithClock(func() time.Time { return now }),
		service.WithLocation(time.UTC),
	)
	snap, err := insp.State(ctx)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printStats(&out, snap))
	assert.Contains(t, out.String(), "Sam")
	assert.Contains(t, out.String(), "2024-01-02")
	assert.Regexp(t, `Streak\s+1 weeks`, out.String())
	assert.Regexp(t, `Bones\s+10\n`, out.String())

	out.Reset()
	require.NoError(t, printAchievements(&out, snap))
	assert.Contains(t, out.String(), "✓")

	out.Reset()
	require.NoError(t, export(ctx, &out, insp))
	assert.Contains(t, out.String(), `"userName":"Sam"`)
}

func TestRemind(t *testing.T) {
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, remind(ctx, &out, nil))
	assert.Equal(t, "No reminders due\n", out.String())

	out.Reset()
	pending := []tracker.Decision{{Window: tracker.WindowMorning, Title: "Rex: Time to Rise!", Body: "Today is Workout A day."}}
	require.NoError(t, remind(ctx, &out, pending))
	assert.Contains(t, out.String(), `title="Rex: Time to Rise!"`)
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", repository.DriverSQLite)
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "rex.db"))
	t.Setenv("TIMEZONE", "UTC")
	t.Cleanup(cleanup.CleanUp)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	outFile := filepath.Join(dir, "export.json")
	rootCmd.SetArgs([]string{"export", "--env-file", "", "-o", outFile})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"wallet":0`)

	out.Reset()
	rootCmd.SetArgs([]string{"stats", "--env-file", ""})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Athlete")

	out.Reset()
	rootCmd.SetArgs([]string{"remind", "--env-file", ""})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "No reminders due")

	// reading never creates a snapshot
	repo, err := repository.NewSQLiteSnapshotRepo(filepath.Join(dir, "rex.db"))
	require.NoError(t, err)
	_, err = repo.Load(context.Background(), catalog.StorageKey)
	assert.ErrorIs(t, err, errorvalues.ErrSnapshotNotFound)
}
