package services

import (
	"context"
	"net/http"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/unicode/norm"

	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/mq"
)

const maxFileNameLen = 100

type FileService struct {
	fileRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	fileRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		fileRepository: fileRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (fs *FileService) FindFiles(ctx context.Context) (domain.Summaries, error) {
	ss, err := fs.fileRepository.FetchFileSummaries(ctx)
	if err != nil {
		return nil, err
	}

	return ss, nil
}

func (fs *FileService) FindFileByID(ctx context.Context, id domain.ID) (*domain.File, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// AddFile stores the already fully-read payload under the sanitized
// display name. Owner existence is checked by the store's foreign key,
// not here.
func (fs *FileService) AddFile(
	ctx context.Context,
	ownerID user.ID,
	name, fileType string,
	data []byte,
) (*domain.File, error) {
	out, err := fs.fileRepository.CreateFile(ctx, domain.File{
		Name:     sanitizeFileName(name),
		FileType: fileType,
		Data:     data,
		UserID:   ownerID,
	})
	if err != nil {
		return nil, err
	}

	if out != nil {
		fs.mq.GetInputChan() <- mq.Event{
			Id:       uuid.New(),
			TS:       time.Now(),
			Method:   http.MethodPost,
			Entity:   mq.EntityFile,
			EntityID: uint64(out.ID),
		}
	}

	fs.mCounter.WithLabelValues("file_added_total").Inc()

	return out, nil
}

func (fs *FileService) DeleteFile(ctx context.Context, id domain.ID) error {
	if err := fs.fileRepository.DeleteFile(ctx, id); err != nil {
		return err
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Method:   http.MethodDelete,
		Entity:   mq.EntityFile,
		EntityID: uint64(id),
	}

	fs.mCounter.WithLabelValues("file_deleted_total").Inc()

	return nil
}

// sanitizeFileName strips path components and control characters but
// otherwise keeps the display name verbatim: the stored name must round
// back out of a download exactly as it was uploaded.
func sanitizeFileName(original string) string {
	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	s = norm.NFC.String(s)

	if s == "" || s == "." || s == ".." || s == "/" {
		return "file"
	}

	ext := path.Ext(s)
	base := strings.TrimSuffix(s, ext)
	for utf8.RuneCountInString(base)+utf8.RuneCountInString(ext) > maxFileNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}
