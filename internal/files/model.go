package files

import "time"

// StoredFile is the metadata record describing one uploaded blob. The blob
// itself lives in the blob store under StorageKey and has no lifecycle of its
// own: it is created and deleted only alongside this record.
type StoredFile struct {
	ID           string    `bson:"_id"`
	OriginalName string    `bson:"original_name"`
	ContentType  string    `bson:"content_type"`
	Size         int64     `bson:"size"`
	UploadedAt   time.Time `bson:"uploaded_at"`
	StorageKey   string    `bson:"storage_key"`
}
