package file

import (
	"file-vault-api/internal/domain/file"
)

func ToResponseSummary(sDomain file.Summary) Summary {
	var s = Summary{
		ID:       uint64(sDomain.ID),
		Name:     sDomain.Name,
		FileType: sDomain.FileType,
	}

	return s
}

func ToResponseSummaries(ssDomain file.Summaries) Summaries {
	ss := make(Summaries, len(ssDomain))
	for idx, s := range ssDomain {
		ss[idx] = ToResponseSummary(*s)
	}

	return ss
}

// ToSummary narrows a full record to its listing view.
func ToSummary(fDomain file.File) Summary {
	return Summary{
		ID:       uint64(fDomain.ID),
		Name:     fDomain.Name,
		FileType: fDomain.FileType,
	}
}
