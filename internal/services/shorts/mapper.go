package shorts

import "github.com/Gouravlamba/eminent-news/internal/mongodb"

func MapDbShortToApiShort(shortDb mongodb.ShortDb) Short {
	return Short{
		Id:            shortDb.Id.Hex(),
		Title:         shortDb.Title,
		VideoURL:      shortDb.VideoURL,
		VideoMimeType: shortDb.VideoMimeType,
		Editor:        shortDb.Editor.Hex(),
		CreatedAt:     shortDb.CreatedAt,
	}
}
