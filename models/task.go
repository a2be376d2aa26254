package models

import "time"

// Task is a single to-do item owned by exactly one user.
//
// Ownership is enforced above the model: every repository operation takes the
// owner's user ID as an explicit argument, and a task is only visible or
// mutable through the API when the requesting session's user ID matches
// UserID.
type Task struct {
	// ID is the unique task identifier. IDs are assigned monotonically and
	// never reused within a store's lifetime, even after deletion.
	ID int64 `json:"id"`

	// UserID references the owning user. It is always taken from the
	// authenticated session, never from a client-supplied body.
	UserID int64 `json:"userId"`

	// Title is the required short text of the task.
	Title string `json:"title"`

	// Description is an optional longer text.
	Description string `json:"description,omitempty"`

	// DueDate is the optional due timestamp. Nil means no due date.
	DueDate *time.Time `json:"dueDate,omitempty"`

	// Completed reports whether the task is done. Defaults to false.
	Completed bool `json:"completed"`

	// Category is a required label. The UI offers "Work", "Study" and
	// "Personal", but the store accepts any non-empty string.
	Category string `json:"category"`

	// CreatedAt is stamped at creation time and immutable afterwards.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskCreate is the request payload for creating a task. DueDate carries the
// raw ISO-8601 string from the client ("2024-06-01" or full RFC 3339); it is
// parsed at the service layer.
type TaskCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
	Category    string `json:"category"`
}

// TaskUpdate is the request payload for a partial task update. Nil fields are
// left untouched; present fields overwrite the stored value.
type TaskUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Completed   *bool   `json:"completed"`
	Category    *string `json:"category"`
}

// TaskPatch is the parsed form of TaskUpdate handed to repositories: the due
// date string has been converted to a timestamp. Nil fields are not applied.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
	Category    *string
}

// IsEmpty reports whether the patch carries no fields to apply.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Completed == nil && p.Category == nil
}
