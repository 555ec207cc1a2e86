package news

import "github.com/Gouravlamba/eminent-news/internal/mongodb"

func MapDbNewsToApiNews(newsDb mongodb.NewsDb) News {
	return News{
		Id:          newsDb.Id.Hex(),
		Title:       newsDb.Title,
		Description: newsDb.Description,
		Editor:      newsDb.Editor.Hex(),
		CreatedAt:   newsDb.CreatedAt,
	}
}
