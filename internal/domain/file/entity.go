package file

import (
	"file-vault-api/internal/domain/user"
)

type (
	ID   uint64
	File struct {
		ID       ID
		Name     string
		FileType string
		Data     []byte
		UserID   user.ID
	}
	Files []*File

	// Summary is the listing view: payload bytes are deliberately absent.
	Summary struct {
		ID       ID
		Name     string
		FileType string
	}
	Summaries []*Summary
)
