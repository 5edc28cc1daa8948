package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/proposal-studio/internal/models"
	"github.com/ignatzorin/proposal-studio/internal/service"
)

func TestResolveYouTube(t *testing.T) {
	video := service.NewVideoService()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"короткая ссылка", "https://youtu.be/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"watch с параметрами", "https://www.youtube.com/watch?t=10&v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"старый формат v", "https://www.youtube.com/v/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"не ссылка на видео", "https://example.com/watch?v=123", ""},
		{"пустая строка", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, video.Resolve(tt.url, models.VideoTypeYouTube))
		})
	}
}

func TestResolveVimeo(t *testing.T) {
	video := service.NewVideoService()

	assert.Equal(t, "https://player.vimeo.com/video/123456789",
		video.Resolve("https://vimeo.com/123456789", models.VideoTypeVimeo))
	assert.Equal(t, "", video.Resolve("https://vimeo.com/about", models.VideoTypeVimeo))
	assert.Equal(t, "", video.Resolve("https://example.com/123", models.VideoTypeVimeo))
}

func TestResolveDirect(t *testing.T) {
	video := service.NewVideoService()

	// прямые ссылки возвращаются без изменений
	url := "https://cdn.example.com/media/intro.mp4"
	assert.Equal(t, url, video.Resolve(url, models.VideoTypeDirect))
	assert.Equal(t, "", video.Resolve("", models.VideoTypeDirect))
}

func TestResolveUnknownType(t *testing.T) {
	video := service.NewVideoService()

	assert.Equal(t, "", video.Resolve("https://youtu.be/dQw4w9WgXcQ", models.VideoType("twitch")))
}
