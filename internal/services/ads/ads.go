package ads

import (
	"context"
	"strings"

	"github.com/Gouravlamba/eminent-news/internal/generics"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPageOfAds lists ads newest first, optionally restricted to a category.
func GetPageOfAds(db *mongodb.DB, ctx context.Context, page, size int, category string) (generics.Page[Ad], error) {
	page, size = generics.NormalizePage(page, size)

	filter := bson.M{}
	if category != "" {
		if !IsValidCategory(category) {
			return generics.Page[Ad]{}, ErrInvalidCategory
		}
		filter["category"] = category
	}

	total, err := db.CountAds(ctx, filter)
	if err != nil {
		return generics.Page[Ad]{}, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page-1) * int64(size)).
		SetLimit(int64(size))
	allAdsDb, err := db.GetAds(ctx, filter, opts)
	if err != nil {
		return generics.Page[Ad]{}, err
	}

	return generics.NewPage(allAdsDb, page, size, total, MapDbAdToApiAd), nil
}

func GetAdById(db *mongodb.DB, ctx context.Context, id string) (Ad, error) {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return Ad{}, err
	}

	adDb, err := db.GetAdById(ctx, oid)
	if err != nil {
		return Ad{}, err
	}
	return MapDbAdToApiAd(adDb), nil
}

func AddAd(db *mongodb.DB, ctx context.Context, req NewAdRequest) (Ad, error) {
	if err := ValidateNewAd(req); err != nil {
		return Ad{}, err
	}

	adDb, err := db.AddAd(ctx, mongodb.AdDb{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
	})
	if err != nil {
		return Ad{}, err
	}
	return MapDbAdToApiAd(adDb), nil
}

func UpdateAd(db *mongodb.DB, ctx context.Context, id string, req UpdateAdRequest) (Ad, error) {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return Ad{}, err
	}

	set, err := BuildUpdate(req)
	if err != nil {
		return Ad{}, err
	}

	adDb, err := db.UpdateAd(ctx, oid, set)
	if err != nil {
		return Ad{}, err
	}
	return MapDbAdToApiAd(adDb), nil
}

func DeleteAd(db *mongodb.DB, ctx context.Context, id string) error {
	oid, err := mongodb.ParseId(id)
	if err != nil {
		return err
	}
	return db.DeleteAd(ctx, oid)
}

func BuildUpdate(req UpdateAdRequest) (bson.M, error) {
	set := bson.M{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, ErrDescriptionRequired
		}
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		if !IsValidCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		set["category"] = *req.Category
	}
	if len(set) == 0 {
		return nil, ErrNothingToUpdate
	}
	return set, nil
}
