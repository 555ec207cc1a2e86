package shorts

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/Gouravlamba/eminent-news/internal/generics"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetPageOfShorts(db *mongodb.DB, ctx context.Context, page, size int) (generics.Page[Short], error) {
	page, size = generics.NormalizePage(page, size)

	filter := bson.M{}
	total, err := db.CountShorts(ctx, filter)
	if err != nil {
		return generics.Page[Short]{}, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page-1) * int64(size)).
		SetLimit(int64(size))
	allShortsDb, err := db.GetShorts(ctx, filter, opts)
	if err != nil {
		return generics.Page[Short]{}, err
	}

	return generics.NewPage(allShortsDb, page, size, total, MapDbShortToApiShort), nil
}

func GetShortById(db *mongodb.DB, ctx context.Context, id string) (Short, error) {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return Short{}, err
	}

	shortDb, err := db.GetShortById(ctx, oid)
	if err != nil {
		return Short{}, err
	}
	return MapDbShortToApiShort(shortDb), nil
}

func AddShort(db *mongodb.DB, ctx context.Context, editor primitive.ObjectID, req NewShortRequest) (Short, error) {
	if err := ValidateNewShort(req); err != nil {
		return Short{}, err
	}

	shortDb, err := db.AddShort(ctx, mongodb.ShortDb{
		Title:         strings.TrimSpace(req.Title),
		VideoURL:      strings.TrimSpace(req.VideoURL),
		VideoMimeType: req.VideoMimeType,
		Editor:        editor,
	})
	if err != nil {
		return Short{}, err
	}
	return MapDbShortToApiShort(shortDb), nil
}

// UploadShort stores the video first and only then records the short, so a
// failed upload leaves no document behind.
func UploadShort(db *mongodb.DB, store VideoStore, ctx context.Context, editor primitive.ObjectID, upload VideoUpload) (Short, error) {
	if store == nil {
		return Short{}, ErrStorageUnavailable
	}
	if upload.Body == nil {
		return Short{}, ErrVideoRequired
	}
	if strings.TrimSpace(upload.Title) == "" {
		return Short{}, ErrTitleRequired
	}
	if !IsValidVideoMimeType(upload.ContentType) {
		return Short{}, ErrInvalidMimeType
	}

	key := VideoObjectKey(upload.Filename)
	videoURL, err := store.Upload(ctx, key, upload.ContentType, upload.Body)
	if err != nil {
		return Short{}, fmt.Errorf("failed to upload video: %w", err)
	}

	return AddShort(db, ctx, editor, NewShortRequest{
		Title:         upload.Title,
		VideoURL:      videoURL,
		VideoMimeType: upload.ContentType,
	})
}

// VideoObjectKey returns a collision-free storage key that keeps the
// extension of the uploaded file.
func VideoObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "shorts/" + uuid.NewString() + ext
}

func UpdateShort(db *mongodb.DB, ctx context.Context, id string, req UpdateShortRequest) (Short, error) {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return Short{}, err
	}

	set, err := BuildUpdate(req)
	if err != nil {
		return Short{}, err
	}

	shortDb, err := db.UpdateShort(ctx, oid, set)
	if err != nil {
		return Short{}, err
	}
	return MapDbShortToApiShort(shortDb), nil
}

func DeleteShort(db *mongodb.DB, ctx context.Context, id string) error {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return err
	}
	return db.DeleteShort(ctx, oid)
}

func BuildUpdate(req UpdateShortRequest) (bson.M, error) {
	set := bson.M{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.VideoURL != nil {
		if !IsValidVideoURL(*req.VideoURL) {
			return nil, ErrInvalidVideoURL
		}
		set["videoUrl"] = strings.TrimSpace(*req.VideoURL)
	}
	if req.VideoMimeType != nil {
		if !IsValidVideoMimeType(*req.VideoMimeType) {
			return nil, ErrInvalidMimeType
		}
		set["videoMimeType"] = *req.VideoMimeType
	}
	if len(set) == 0 {
		return nil, ErrNothingToUpdate
	}
	return set, nil
}
