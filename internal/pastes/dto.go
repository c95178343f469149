package pastes

import "time"

// PasteResponse is the outward-facing representation of a paste.
type PasteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(paste Paste) PasteResponse {
	return PasteResponse{
		ID:        paste.ID,
		Title:     paste.Title,
		Content:   paste.Content,
		CreatedAt: paste.CreatedAt,
	}
}
