package ports

import (
	"context"

	"file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
)

type FileService interface {
	FindFiles(ctx context.Context) (file.Summaries, error)
	FindFileByID(ctx context.Context, id file.ID) (*file.File, error)
	AddFile(ctx context.Context, ownerID user.ID, name, fileType string, data []byte) (*file.File, error)
	DeleteFile(ctx context.Context, id file.ID) error
}
