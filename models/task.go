package models

import "time"

// Task is a todo item of the signed-in user.
type Task struct {
	// ID is the server-assigned identifier. Older backends omit it and
	// address tasks by their position in the list.
	ID int64 `json:"id,omitempty"`

	UserID      int64      `json:"-"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Ref is the value used in /api/todos/{id} paths. It is filled by
	// AssignTaskRefs and never sent over the wire.
	Ref int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "todos"
}

// TaskRequest is the body of POST /api/todos.
type TaskRequest struct {
	Title string `json:"title"`
}

// AssignTaskRefs sets Ref on every task. When every task carries an ID the
// ID is used; otherwise the list is treated as positional and Ref is the index.
func AssignTaskRefs(tasks []Task) {
	positional := false
	for _, t := range tasks {
		if t.ID == 0 {
			positional = true
			break
		}
	}

	for i := range tasks {
		if positional {
			tasks[i].Ref = int64(i)
		} else {
			tasks[i].Ref = tasks[i].ID
		}
	}
}
