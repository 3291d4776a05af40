package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/file"
	userDomain "file-vault-api/internal/domain/user"
	fileDB "file-vault-api/internal/infrastructure/db/postgres/file"
	"file-vault-api/internal/interface/api/rest/dto/file"
	"file-vault-api/internal/interface/api/rest/validator"
)

// 10MB per upload, read fully into memory before the insert commits
const maxUploadSize = int64(10 << 20)

const defaultFileType = "application/octet-stream"

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	r.POST(RouteUserFiles, fc.AddFileHandler)
	r.GET(RouteFiles, fc.GetFilesHandler)
	r.GET(RouteFile, fc.DownloadFileHandler)
	r.DELETE(RouteFile, fc.DeleteFileHandler)

	return fc
}

func (fc *FileController) AddFileHandler(c *gin.Context) {
	ok, ownerID := validator.IsID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	fh, err := c.FormFile("data")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data is required"})
		return
	}
	// zero-length uploads are fine, an empty blob is still a blob
	if fh.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	// the payload must be complete in memory before anything is inserted
	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	if int64(len(data)) > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = fh.Filename
	}
	fileType := c.PostForm("type")
	if fileType == "" {
		fileType = fh.Header.Get("Content-Type")
	}
	if fileType == "" {
		fileType = defaultFileType
	}

	f, err := fc.fileService.AddFile(c.Request.Context(), userDomain.ID(ownerID), name, fileType, data)
	if err != nil {
		if errors.Is(err, fileDB.ErrOwnerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "owner user not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to add a file"},
		)
		fc.logger.Error("AddFile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, file.ToSummary(*f))
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	files, err := fc.fileService.FindFiles(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.ResponseData{
		Data: file.ToResponseSummaries(files),
	})
}

// DownloadFileHandler streams the stored bytes back verbatim with the
// stored name and declared content type.
func (fc *FileController) DownloadFileHandler(c *gin.Context) {
	ok, id := validator.IsID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a positive integer"},
		)
		return
	}

	f, err := fc.fileService.FindFileByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a file"},
		)
		fc.logger.Error("FindFileByID() error", zap.Error(err))
		return
	}

	if f == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "file not found"},
		)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	c.Data(http.StatusOK, f.FileType, f.Data)
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	ok, id := validator.IsID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a positive integer"},
		)
		return
	}

	err := fc.fileService.DeleteFile(c.Request.Context(), domain.ID(id))
	if err != nil {
		if errors.Is(err, fileDB.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete file"},
		)
		fc.logger.Error("DeleteFile() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
