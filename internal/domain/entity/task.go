package entity

import (
	"time"
)

// TaskCategory classifies backlog tasks.
type TaskCategory string

const (
	TaskCategoryLearning   TaskCategory = "Learning courses"
	TaskCategoryRefinement TaskCategory = "Product refinement"
	TaskCategoryMandatory  TaskCategory = "Mandatory sessions"
)

// ValidTaskCategory reports whether s names one of the three categories.
func ValidTaskCategory(s string) bool {
	switch TaskCategory(s) {
	case TaskCategoryLearning, TaskCategoryRefinement, TaskCategoryMandatory:
		return true
	}
	return false
}

// Task is a backlog entry embedded in Workspace.Backlog. Non-global tasks
// are targeted at the (position, planet) pairs named on them; global tasks
// reach every mentee. A personal task carries the owning UserID.
type Task struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Category    TaskCategory `bson:"category" json:"category"`
	StarsEarned int          `bson:"stars_earned" json:"stars_earned"`
	Planets     []string     `bson:"planets" json:"planets"`
	Positions   []string     `bson:"positions" json:"positions"`
	IsGlobal    bool         `bson:"is_global" json:"is_global"`
	UserID      *string      `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Link        *string      `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

// TaskStatus is the per-member quest state.
type TaskStatus string

const (
	TaskStatusBacklog    TaskStatus = "Backlog"
	TaskStatusToDo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusInReview   TaskStatus = "In Review"
	TaskStatusDone       TaskStatus = "Done"
)

// ValidTaskStatus reports whether s names one of the five states.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusBacklog, TaskStatusToDo, TaskStatusInProgress, TaskStatusInReview, TaskStatusDone:
		return true
	}
	return false
}

// SelfServiceStatus reports whether a mentee may set s on their own task.
// Mentees cannot self-mark Done; the mentor override path handles that.
func SelfServiceStatus(s TaskStatus) bool {
	return s == TaskStatusInProgress || s == TaskStatusInReview
}

// UserTask is a quest entry embedded per WorkspaceUser, created when a
// backlog task is fanned out to a matching member.
type UserTask struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	Tasks     []string   `bson:"tasks" json:"tasks"`
	Status    TaskStatus `bson:"status" json:"status"`
	Comments  []Comment  `bson:"comments" json:"comments"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// References reports whether the quest entry points at taskID.
func (ut *UserTask) References(taskID string) bool {
	for _, id := range ut.Tasks {
		if id == taskID {
			return true
		}
	}
	return false
}

// Comment is a timestamped free-text note on a quest entry.
type Comment struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
