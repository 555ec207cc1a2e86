package storage

import (
	"context"
	"testing"

	"github.com/Gouravlamba/eminent-news/internal/config"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	cases := []struct {
		name  string
		store S3Store
		want  string
	}{
		{
			name:  "aws virtual host",
			store: S3Store{bucket: "videos", region: "eu-west-1"},
			want:  "https://videos.s3.eu-west-1.amazonaws.com/shorts/a%20b.mp4",
		},
		{
			name:  "custom endpoint",
			store: S3Store{bucket: "videos", endpoint: "http://localhost:9000/"},
			want:  "http://localhost:9000/videos/shorts/a%20b.mp4",
		},
		{
			name:  "public base url wins",
			store: S3Store{bucket: "videos", endpoint: "http://localhost:9000", publicBaseURL: "https://cdn.eminent.news/"},
			want:  "https://cdn.eminent.news/shorts/a%20b.mp4",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.store.PublicURL("shorts/a b.mp4"))
		})
	}
}

func TestNewS3StoreRequiresBucket(t *testing.T) {
	_, err := NewS3Store(context.Background(), config.S3Config{Region: "us-east-1"})
	require.Error(t, err)
}

func TestNewS3Store(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	store, err := NewS3Store(context.Background(), config.S3Config{
		Bucket:   "videos",
		Region:   "us-east-1",
		Endpoint: "http://localhost:9000",
	})
	require.NoError(t, err)
	require.Equal(t, "us-east-1", store.region)
	require.Equal(t, "http://localhost:9000/videos/k.mp4", store.PublicURL("k.mp4"))
}
