package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateTodoRequest represents the request body for creating a todo.
type CreateTodoRequest struct {
	Title    string  `json:"title" binding:"required,max=200"`
	Priority string  `json:"priority" binding:"omitempty,priority"`
	Category string  `json:"category" binding:"max=50"`
	DueDate  *string `json:"due_date" binding:"omitempty,datekey"`
}

// UpdateTodoRequest edits only the fields present in the body. An empty due_date clears it.
type UpdateTodoRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=200"`
	Priority *string `json:"priority" binding:"omitempty,priority"`
	Category *string `json:"category" binding:"omitempty,max=50"`
	DueDate  *string `json:"due_date"`
}

// TodoResponse represents a todo in API responses.
type TodoResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category,omitempty"`
	DueDate     string     `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TodoListResponse lists todos in creation order.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
}

// ToTodoResponse converts a Todo entity.
func ToTodoResponse(todo *entity.Todo) TodoResponse {
	resp := TodoResponse{
		ID:          todo.ID.String(),
		Title:       todo.Title,
		Completed:   todo.Completed,
		Priority:    string(todo.Priority),
		Category:    todo.Category,
		CreatedAt:   todo.CreatedAt,
		CompletedAt: todo.CompletedAt,
	}
	if todo.DueDate != nil {
		resp.DueDate = entity.DateKey(*todo.DueDate)
	}
	return resp
}

// ToTodoListResponse converts a slice of todos.
func ToTodoListResponse(todos []*entity.Todo) TodoListResponse {
	resp := TodoListResponse{Todos: make([]TodoResponse, 0, len(todos))}
	for _, t := range todos {
		resp.Todos = append(resp.Todos, ToTodoResponse(t))
	}
	return resp
}
