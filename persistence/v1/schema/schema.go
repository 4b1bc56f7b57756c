package schema

// the types are kept to the subset understood by mysql, postgres and ramsql
const schema = `CREATE TABLE notes (
	id VARCHAR(36) PRIMARY KEY,
	user_id VARCHAR(64) NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	color VARCHAR(16),
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

const dropSchema = `DROP TABLE notes`
