package shorts

import (
	"context"
	"io"
	"time"
)

type Short struct {
	Id            string    `json:"id"`
	Title         string    `json:"title"`
	VideoURL      string    `json:"videoUrl"`
	VideoMimeType string    `json:"videoMimeType"`
	Editor        string    `json:"editor"`
	CreatedAt     time.Time `json:"createdAt"`
}

type NewShortRequest struct {
	Title         string `json:"title"`
	VideoURL      string `json:"videoUrl"`
	VideoMimeType string `json:"videoMimeType"`
}

type UpdateShortRequest struct {
	Title         *string `json:"title"`
	VideoURL      *string `json:"videoUrl"`
	VideoMimeType *string `json:"videoMimeType"`
}

// VideoUpload is a video file received in a multipart request.
type VideoUpload struct {
	Title       string
	Filename    string
	ContentType string
	Body        io.Reader
}

// VideoStore persists uploaded videos and returns the URL they are served from.
type VideoStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
