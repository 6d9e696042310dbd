package repository

const (
	createUser = `INSERT INTO users (username, email, password, display_name, avatar_url, role, created_at, updated_at)
						VALUES ($1, $2, $3, $4, $5, COALESCE(NULLIF($6, ''), 'user')::user_role, now(), now())
						RETURNING *`
	updateUser = `UPDATE users
						SET display_name = COALESCE(NULLIF($1, ''), display_name),
						    avatar_url = COALESCE(NULLIF($2, ''), avatar_url),
						    email = COALESCE(NULLIF($3, ''), email),
						    updated_at = now()
						WHERE user_id = $4
						RETURNING *
				`
	deleteUserQuery = `DELETE FROM users WHERE user_id = $1`

	getUserQuery = `SELECT user_id, username, email, display_name, avatar_url, role, created_at, updated_at
					 FROM users
					 WHERE user_id = $1`
	getUserByEmail = `SELECT user_id, username, password, email, display_name, avatar_url, role, created_at, updated_at
						FROM users WHERE email = $1`
)
