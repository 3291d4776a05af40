package file

type (
	File struct {
		ID       uint64
		Name     string
		FileType string
		Data     []byte
		UserID   uint64
	}
	Summary struct {
		ID       uint64
		Name     string
		FileType string
	}
	Summaries []*Summary
)
