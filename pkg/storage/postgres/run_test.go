package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func runningRun(campus, date string) domain.Run {
	return domain.Run{
		CampusName:  campus,
		BussingDate: date,
		Status:      domain.RunStatusRunning,
	}
}

func TestPgSQL_Runs(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("store run fills generated fields", func(t *testing.T) {
		run, err := pgSQL.StoreRun(ctx, runningRun("Accra", "2026-10-11"))
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, uuid.UUID(run.ID))
		require.Equal(t, "Accra", run.CampusName)
		require.Equal(t, "2026-10-11", run.BussingDate)
		require.Equal(t, domain.RunStatusRunning, run.Status)
		require.False(t, run.CreatedAt.IsZero())
		require.True(t, run.FinishedAt.IsZero())
		require.Empty(t, run.ReportRows)
	})

	t.Run("store run rejects bad date", func(t *testing.T) {
		_, err := pgSQL.StoreRun(ctx, runningRun("Accra", "11/10/2026"))
		require.Error(t, err)
	})

	t.Run("finish run", func(t *testing.T) {
		run, err := pgSQL.StoreRun(ctx, runningRun("Accra", "2026-10-04"))
		require.NoError(t, err)

		finished, err := pgSQL.FinishRun(ctx, run.ID, storage.RunUpdates{
			Status:     domain.RunStatusSucceeded,
			StatusCode: ptr(200),
			SMSSent:    ptr(true),
			ReportRows: map[string]int{"councilList": 12, "weekendIncome": 0},
			LastError:  ptr(""),
		})
		require.NoError(t, err)
		require.NotNil(t, finished)
		require.Equal(t, domain.RunStatusSucceeded, finished.Status)
		require.Equal(t, 200, finished.StatusCode)
		require.True(t, finished.SMSSent)
		require.Equal(t, map[string]int{"councilList": 12, "weekendIncome": 0}, finished.ReportRows)
		require.Empty(t, finished.LastError)
		require.False(t, finished.FinishedAt.IsZero())

		again, err := pgSQL.FinishRun(ctx, run.ID, storage.RunUpdates{Status: domain.RunStatusFailed})
		require.NoError(t, err)
		require.Nil(t, again, "a finished run must not be finished twice")
	})

	t.Run("finish unknown run", func(t *testing.T) {
		res, err := pgSQL.FinishRun(ctx, domain.RunID(uuid.New()), storage.RunUpdates{Status: domain.RunStatusFailed})
		require.NoError(t, err)
		require.Nil(t, res)
	})

	t.Run("run by id", func(t *testing.T) {
		run, err := pgSQL.StoreRun(ctx, runningRun("Accra", "2026-09-27"))
		require.NoError(t, err)

		got, err := pgSQL.RunByID(ctx, run.ID)
		require.NoError(t, err)
		require.Equal(t, run.ID, got.ID)
		require.Equal(t, "2026-09-27", got.BussingDate)

		missing, err := pgSQL.RunByID(ctx, domain.RunID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, missing)
	})
}

func TestPgSQL_AbandonRuns(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	stale, err := pgSQL.StoreRun(ctx, runningRun("Accra", "2026-10-11"))
	require.NoError(t, err)
	otherDate, err := pgSQL.StoreRun(ctx, runningRun("Accra", "2026-10-04"))
	require.NoError(t, err)
	otherCampus, err := pgSQL.StoreRun(ctx, runningRun("Kumasi", "2026-10-11"))
	require.NoError(t, err)

	n, err := pgSQL.AbandonRuns(ctx, "Accra", "2026-10-11", "superseded")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := pgSQL.RunByID(ctx, stale.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RunStatusFailed, got.Status)
	require.Equal(t, "superseded", got.LastError)
	require.False(t, got.FinishedAt.IsZero())

	for _, id := range []domain.RunID{otherDate.ID, otherCampus.ID} {
		got, err := pgSQL.RunByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.RunStatusRunning, got.Status)
	}

	n, err = pgSQL.AbandonRuns(ctx, "Accra", "2026-10-11", "superseded")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestPgSQL_RecentRuns(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	var accra []domain.RunID
	for _, date := range []string{"2026-09-20", "2026-09-27", "2026-10-04"} {
		run, err := pgSQL.StoreRun(ctx, runningRun("Accra", date))
		require.NoError(t, err)
		accra = append(accra, run.ID)
		time.Sleep(5 * time.Millisecond) // distinct created_at
	}
	_, err := pgSQL.StoreRun(ctx, runningRun("Kumasi", "2026-10-04"))
	require.NoError(t, err)

	t.Run("filters by campus newest first", func(t *testing.T) {
		runs, err := pgSQL.RecentRuns(ctx, "Accra", 10)
		require.NoError(t, err)
		require.Len(t, runs, 3)
		require.Equal(t, accra[2], runs[0].ID)
		require.Equal(t, accra[1], runs[1].ID)
		require.Equal(t, accra[0], runs[2].ID)
	})

	t.Run("limit", func(t *testing.T) {
		runs, err := pgSQL.RecentRuns(ctx, "Accra", 2)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		require.Equal(t, "2026-10-04", runs[0].BussingDate)
	})

	t.Run("every campus", func(t *testing.T) {
		runs, err := pgSQL.RecentRuns(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, runs, 4)
		require.Equal(t, "Kumasi", runs[0].CampusName)
	})

	t.Run("unknown campus", func(t *testing.T) {
		runs, err := pgSQL.RecentRuns(ctx, "Takoradi", 10)
		require.NoError(t, err)
		require.Empty(t, runs)
	})
}

func TestPgSQL_WithTx_StoreRunIsAtomic(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	var stored *domain.Run
	err := pgSQL.WithTx(ctx, func(tx storage.AllStorage) error {
		run, err := tx.StoreRun(ctx, runningRun("Accra", "2026-10-11"))
		stored = run

		return err
	})
	require.NoError(t, err)

	got, err := pgSQL.RunByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	var rolledBack *domain.Run
	err = pgSQL.WithTx(ctx, func(tx storage.AllStorage) error {
		run, err := tx.StoreRun(ctx, runningRun("Accra", "2026-10-04"))
		require.NoError(t, err)
		rolledBack = run

		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	got, err = pgSQL.RunByID(ctx, rolledBack.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}
