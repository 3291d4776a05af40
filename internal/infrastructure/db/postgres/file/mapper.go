package file

import (
	domain "file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:       domain.ID(model.ID),
		Name:     model.Name,
		FileType: model.FileType,
		Data:     model.Data,
		UserID:   user.ID(model.UserID),
	}

	return f
}

func fromDBSummary(model *Summary) *domain.Summary {
	return &domain.Summary{
		ID:       domain.ID(model.ID),
		Name:     model.Name,
		FileType: model.FileType,
	}
}

func fromDBSummaries(models *Summaries) domain.Summaries {
	ss := make(domain.Summaries, len(*models))
	for idx, s := range *models {
		ss[idx] = fromDBSummary(s)
	}

	return ss
}
