package ads

import "github.com/Gouravlamba/eminent-news/internal/mongodb"

func MapDbAdToApiAd(adDb mongodb.AdDb) Ad {
	return Ad{
		Id:          adDb.Id.Hex(),
		Title:       adDb.Title,
		Description: adDb.Description,
		Category:    adDb.Category,
		CreatedAt:   adDb.CreatedAt,
	}
}
