package file

const (
	// Listing never pulls payload bytes.
	SelectFileSummaries = `
		SELECT id, name, file_type
		FROM files
	`
	SelectFileByID = `
		SELECT id, name, file_type, data, user_id
		FROM files
		WHERE id = $1
	`
	InsertFile = `
		INSERT INTO files (name, file_type, data, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, file_type, data, user_id
	`
	DeleteFileByID = `
		DELETE FROM files
		WHERE id = $1
	`
)
