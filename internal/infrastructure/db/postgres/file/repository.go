package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"file-vault-api/internal/domain/file"
	"file-vault-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFileSummaries(ctx context.Context) (file.Summaries, error) {
	rows, err := r.db.Query(ctx, SelectFileSummaries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ss Summaries
	for rows.Next() {
		s := new(Summary)

		if err = rows.Scan(
			&s.ID,
			&s.Name,
			&s.FileType,
		); err != nil {
			return nil, err
		}

		ss = append(ss, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBSummaries(&ss), nil
}

func (r *Repository) FetchFileByID(ctx context.Context, id file.ID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByID, uint64(id)).Scan(
		&f.ID,
		&f.Name,
		&f.FileType,
		&f.Data,
		&f.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

// CreateFile is a single INSERT: the row either commits whole or not at all,
// and a missing owner surfaces as a foreign key violation rather than an
// application-level existence check that could race with a user delete.
func (r *Repository) CreateFile(ctx context.Context, req file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.Name, req.FileType, req.Data, uint64(req.UserID),
	).Scan(
		&f.ID,
		&f.Name,
		&f.FileType,
		&f.Data,
		&f.UserID,
	)
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) DeleteFile(ctx context.Context, id file.ID) error {
	tag, err := r.db.Exec(ctx, DeleteFileByID, uint64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFileNotFound
	}

	return nil
}
