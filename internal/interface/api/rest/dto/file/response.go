package file

type (
	Summary struct {
		ID       uint64 `json:"id"`
		Name     string `json:"name"`
		FileType string `json:"file_type"`
	}
	Summaries    []Summary
	ResponseData struct {
		Data Summaries `json:"data"`
	}
)
