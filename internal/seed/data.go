package seed

import (
	"fmt"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EditorHex is the editor every sample news item and short points to.
const EditorHex = "63b2f1e8e4b0f1a2b3c4d5e6"

const sampleSize = 3

var editorId = mustObjectId(EditorHex)

func mustObjectId(hex string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return oid
}

func SampleNews(now time.Time) []mongodb.NewsDb {
	out := make([]mongodb.NewsDb, 0, sampleSize)
	for i := 1; i <= sampleSize; i++ {
		out = append(out, mongodb.NewsDb{
			Id:          primitive.NewObjectID(),
			Title:       fmt.Sprintf("Breaking News %d", i),
			Description: fmt.Sprintf("Description for breaking news %d", i),
			Editor:      editorId,
			CreatedAt:   now,
		})
	}
	return out
}

func SampleAds(now time.Time) []mongodb.AdDb {
	categories := []string{"Electronics", "Fashion", "Automotive"}

	out := make([]mongodb.AdDb, 0, sampleSize)
	for i, category := range categories {
		out = append(out, mongodb.AdDb{
			Id:          primitive.NewObjectID(),
			Title:       fmt.Sprintf("Ad %d", i+1),
			Description: fmt.Sprintf("Description for ad %d", i+1),
			Category:    category,
			CreatedAt:   now,
		})
	}
	return out
}

func SampleShorts(now time.Time) []mongodb.ShortDb {
	out := make([]mongodb.ShortDb, 0, sampleSize)
	for i := 1; i <= sampleSize; i++ {
		out = append(out, mongodb.ShortDb{
			Id:            primitive.NewObjectID(),
			Title:         fmt.Sprintf("Short %d", i),
			VideoURL:      fmt.Sprintf("http://example.com/short%d.mp4", i),
			VideoMimeType: "video/mp4",
			Editor:        editorId,
			CreatedAt:     now,
		})
	}
	return out
}
