package news

import (
	"context"
	"strings"

	"github.com/Gouravlamba/eminent-news/internal/generics"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPageOfNews returns the newest news first.
func GetPageOfNews(db *mongodb.DB, ctx context.Context, page, size int) (generics.Page[News], error) {
	page, size = generics.NormalizePage(page, size)

	filter := bson.M{}
	total, err := db.CountNews(ctx, filter)
	if err != nil {
		return generics.Page[News]{}, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page-1) * int64(size)).
		SetLimit(int64(size))
	allNewsDb, err := db.GetNews(ctx, filter, opts)
	if err != nil {
		return generics.Page[News]{}, err
	}

	return generics.NewPage(allNewsDb, page, size, total, MapDbNewsToApiNews), nil
}

func GetNewsById(db *mongodb.DB, ctx context.Context, id string) (News, error) {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return News{}, err
	}

	newsDb, err := db.GetNewsById(ctx, oid)
	if err != nil {
		return News{}, err
	}
	return MapDbNewsToApiNews(newsDb), nil
}

func AddNews(db *mongodb.DB, ctx context.Context, editor primitive.ObjectID, req NewNewsRequest) (News, error) {
	if err := ValidateNewNews(req); err != nil {
		return News{}, err
	}

	newsDb, err := db.AddNews(ctx, mongodb.NewsDb{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Editor:      editor,
	})
	if err != nil {
		return News{}, err
	}
	return MapDbNewsToApiNews(newsDb), nil
}

func UpdateNews(db *mongodb.DB, ctx context.Context, id string, req UpdateNewsRequest) (News, error) {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return News{}, err
	}

	set, err := BuildUpdate(req)
	if err != nil {
		return News{}, err
	}

	newsDb, err := db.UpdateNews(ctx, oid, set)
	if err != nil {
		return News{}, err
	}
	return MapDbNewsToApiNews(newsDb), nil
}

func DeleteNews(db *mongodb.DB, ctx context.Context, id string) error {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return err
	}
	return db.DeleteNews(ctx, oid)
}

// BuildUpdate validates the provided fields and returns the $set document.
func BuildUpdate(req UpdateNewsRequest) (bson.M, error) {
	set := bson.M{}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, ErrDescriptionRequired
		}
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if len(set) == 0 {
		return nil, ErrNothingToUpdate
	}
	return set, nil
}
