package store

const (
	createUser = `INSERT INTO users (username, password)
    VALUES ($1, $2)
    RETURNING user_id, username, password;`

	findUserByUsername = `SELECT user_id, username, password
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password
    FROM users
    WHERE user_id = $1;`

	createTask = `INSERT INTO tasks (user_id, title, description, due_date, completed, category, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, NOW())
    RETURNING id, user_id, title, description, due_date, completed, category, created_at;`

	getTasksByUser = `SELECT id, user_id, title, description, due_date, completed, category, created_at
    FROM tasks
    WHERE user_id = $1
    ORDER BY id;`

	getTaskByIDAndUser = `SELECT id, user_id, title, description, due_date, completed, category, created_at
    FROM tasks
    WHERE id = $1 AND user_id = $2;`

	deleteTask = `DELETE FROM tasks
    WHERE id = $1 AND user_id = $2;`
)
