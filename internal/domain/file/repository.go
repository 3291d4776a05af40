package file

import (
	"context"
)

type Repository interface {
	FetchFileSummaries(ctx context.Context) (Summaries, error)
	FetchFileByID(ctx context.Context, id ID) (*File, error)
	CreateFile(ctx context.Context, req File) (*File, error)
	DeleteFile(ctx context.Context, id ID) error
}
