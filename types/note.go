package types

import "time"

type CreateNoteRequest struct {
	CategoryID string `json:"category_id" form:"category_id"`
	Title      string `json:"title" form:"title"`
	Content    string `json:"content" form:"content"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

type NoteItem struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
