package file

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "file-vault-api/internal/domain/file"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestCreateFile(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
		WithArgs("dump.bin", "application/octet-stream", payload, uint64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "file_type", "data", "user_id"}).
			AddRow(uint64(9), "dump.bin", "application/octet-stream", payload, uint64(1)))

	f, err := repo.CreateFile(context.Background(), domain.File{
		Name:     "dump.bin",
		FileType: "application/octet-stream",
		Data:     payload,
		UserID:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ID(9), f.ID)
	assert.Equal(t, payload, f.Data)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFile_OwnerNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
		WithArgs("a.txt", "text/plain", []byte("x"), uint64(404)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "files_user_id_fkey"})

	_, err := repo.CreateFile(context.Background(), domain.File{
		Name:     "a.txt",
		FileType: "text/plain",
		Data:     []byte("x"),
		UserID:   404,
	})
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFileByID_RoundTrip(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	payload := []byte("payload bytes")

	mock.ExpectQuery(regexp.QuoteMeta(SelectFileByID)).
		WithArgs(uint64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "file_type", "data", "user_id"}).
			AddRow(uint64(3), "notes.txt", "text/plain", payload, uint64(1)))

	f, err := repo.FetchFileByID(context.Background(), domain.ID(3))
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, payload, f.Data)
	assert.Equal(t, "notes.txt", f.Name)
	assert.Equal(t, "text/plain", f.FileType)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFileByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(SelectFileByID)).
		WithArgs(uint64(404)).
		WillReturnError(pgx.ErrNoRows)

	f, err := repo.FetchFileByID(context.Background(), domain.ID(404))
	require.NoError(t, err)
	assert.Nil(t, f)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFileSummaries(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(SelectFileSummaries)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "file_type"}).
			AddRow(uint64(1), "a.txt", "text/plain").
			AddRow(uint64(2), "b.png", "image/png"))

	ss, err := repo.FetchFileSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, ss, 2)
	assert.Equal(t, "b.png", ss[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFile_NotFoundOnSecondDelete(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(DeleteFileByID)).
		WithArgs(uint64(8)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(DeleteFileByID)).
		WithArgs(uint64(8)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.DeleteFile(context.Background(), domain.ID(8)))
	assert.ErrorIs(t, repo.DeleteFile(context.Background(), domain.ID(8)), ErrFileNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
