package blockaudit

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

type recordingExecutor struct {
	query string
	args  []interface{}
	err   error
}

func (r *recordingExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	r.query = query
	r.args = args
	if r.err != nil {
		return nil, r.err
	}
	return driverResult(1), nil
}

func (r *recordingExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type driverResult int64

func (d driverResult) LastInsertId() (int64, error) { return 0, nil }
func (d driverResult) RowsAffected() (int64, error) { return int64(d), nil }

func TestAddItems_MultiRowInsert(t *testing.T) {
	exec := &recordingExecutor{}
	repo := NewRepository(exec)

	slot := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)
	items := []domain.BlockItem{
		{Slot: slot, OK: true, ReservationID: "r1"},
		{Slot: slot.Add(30 * time.Minute), OK: false, Error: "slot taken"},
	}

	require.NoError(t, repo.AddItems(context.Background(), "b1", items))

	assert.Equal(t,
		"INSERT INTO block_batch_items (batch_id,slot,ok,skipped,reservation_id,error) VALUES ($1,$2,$3,$4,$5,$6),($7,$8,$9,$10,$11,$12)",
		exec.query)
	require.Len(t, exec.args, 12)
	assert.Equal(t, "b1", exec.args[0])
	assert.Equal(t, sql.NullString{String: "r1", Valid: true}, exec.args[4])
	assert.Equal(t, sql.NullString{}, exec.args[5])
	assert.Equal(t, sql.NullString{String: "slot taken", Valid: true}, exec.args[11])
}

func TestAddItems_Empty(t *testing.T) {
	exec := &recordingExecutor{}
	repo := NewRepository(exec)

	require.NoError(t, repo.AddItems(context.Background(), "b1", nil))
	assert.Empty(t, exec.query)
}

func TestAddItems_ExecError(t *testing.T) {
	repo := NewRepository(&recordingExecutor{err: errors.New("connection reset")})

	err := repo.AddItems(context.Background(), "b1", []domain.BlockItem{{Slot: time.Now(), OK: true}})
	assert.ErrorIs(t, err, ErrExecQuery)
}
