package files

import "time"

// FileResponse is the outward-facing representation of a stored file. The
// storage key is internal and never leaves the service.
type FileResponse struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

func toResponse(file StoredFile) FileResponse {
	return FileResponse{
		ID:           file.ID,
		OriginalName: file.OriginalName,
		ContentType:  file.ContentType,
		Size:         file.Size,
		UploadedAt:   file.UploadedAt,
	}
}
