package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execCall struct {
	sql  string
	args []any
}

// fakePhotoExecutor records the statements savePhotoTx issues.
type fakePhotoExecutor struct {
	calls     []execCall
	updateTag string
	queried   []execCall
}

func (f *fakePhotoExecutor) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	if f.updateTag != "" && strings.Contains(sql, "WHERE id =") {
		return pgconn.NewCommandTag(f.updateTag), nil
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (f *fakePhotoExecutor) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queried = append(f.queried, execCall{sql: sql, args: args})
	return insertedPhotoRow{}
}

type insertedPhotoRow struct{}

func (insertedPhotoRow) Scan(dest ...any) error {
	*(dest[0].(*int64)) = 11
	*(dest[1].(*time.Time)) = time.Now()
	return nil
}

func TestSavePhotoCoverClearsSiblings(t *testing.T) {
	executor := &fakePhotoExecutor{}
	photo := &domain.Photo{PropertyID: 5, ImagePath: "casa/frente.jpg", IsCover: true}

	err := savePhotoTx(context.Background(), executor, photo)

	require.NoError(t, err)
	// Sibling cover flags are cleared before the new cover row is written,
	// leaving exactly one cover per property
	require.Len(t, executor.calls, 1)
	assert.Contains(t, executor.calls[0].sql, "SET is_cover = false")
	assert.Equal(t, []any{int64(5)}, executor.calls[0].args)

	require.Len(t, executor.queried, 1)
	assert.Contains(t, executor.queried[0].sql, "INSERT INTO property_photos")
	assert.Equal(t, int64(11), photo.ID)
}

func TestSavePhotoNonCoverLeavesSiblings(t *testing.T) {
	executor := &fakePhotoExecutor{}
	photo := &domain.Photo{PropertyID: 5, ImagePath: "casa/quintal.jpg"}

	err := savePhotoTx(context.Background(), executor, photo)

	require.NoError(t, err)
	assert.Empty(t, executor.calls)
	require.Len(t, executor.queried, 1)
}

func TestSavePhotoUpdateExistingCover(t *testing.T) {
	executor := &fakePhotoExecutor{}
	photo := &domain.Photo{ID: 11, PropertyID: 5, ImagePath: "casa/frente.jpg", IsCover: true}

	err := savePhotoTx(context.Background(), executor, photo)

	require.NoError(t, err)
	// Clear-siblings runs first, then the targeted UPDATE; nothing inserted
	require.Len(t, executor.calls, 2)
	assert.Contains(t, executor.calls[0].sql, "SET is_cover = false")
	assert.Contains(t, executor.calls[1].sql, "WHERE id = $5 AND property_id = $6")
	assert.Empty(t, executor.queried)
}

func TestSavePhotoUpdateMissingPhoto(t *testing.T) {
	executor := &fakePhotoExecutor{updateTag: "UPDATE 0"}
	photo := &domain.Photo{ID: 99, PropertyID: 5, ImagePath: "casa/frente.jpg"}

	err := savePhotoTx(context.Background(), executor, photo)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
