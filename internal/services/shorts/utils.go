package shorts

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidVideoURL    = errors.New("videoUrl must be an absolute http or https URL")
	ErrInvalidMimeType    = errors.New("videoMimeType must be a video MIME type, e.g. video/mp4")
	ErrNothingToUpdate    = errors.New("no fields to update")
	ErrVideoRequired      = errors.New("video file is required")
	ErrStorageUnavailable = errors.New("video storage is not configured")
)

var ErrorMap = map[error]int{
	ErrTitleRequired:      http.StatusBadRequest,
	ErrInvalidVideoURL:    http.StatusBadRequest,
	ErrInvalidMimeType:    http.StatusBadRequest,
	ErrNothingToUpdate:    http.StatusBadRequest,
	ErrVideoRequired:      http.StatusBadRequest,
	ErrStorageUnavailable: http.StatusServiceUnavailable,
}

func IsValidVideoURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func IsValidVideoMimeType(mimeType string) bool {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "video/") && len(mediaType) > len("video/")
}

func ValidateNewShort(req NewShortRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrTitleRequired
	}
	if !IsValidVideoURL(req.VideoURL) {
		return ErrInvalidVideoURL
	}
	if !IsValidVideoMimeType(req.VideoMimeType) {
		return ErrInvalidMimeType
	}
	return nil
}
