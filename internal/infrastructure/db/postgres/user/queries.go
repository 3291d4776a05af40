package user

const (
	SelectUsers = `
		SELECT id, username, password_hash
		FROM users
	`
	SelectUserByID = `
		SELECT id, username, password_hash
		FROM users
		WHERE id = $1
	`
	SelectUserByUsername = `
		SELECT id, username, password_hash
		FROM users
		WHERE username = $1
	`
	InsertUser = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash
	`
	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
	`
)
