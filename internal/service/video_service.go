package service

import (
	"regexp"

	"github.com/ignatzorin/proposal-studio/internal/models"
)

// Шаблоны покрывают распространённые формы ссылок: watch?v=, youtu.be/,
// /embed/, /v/ для YouTube и числовой идентификатор после vimeo.com/.
var (
	youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
	vimeoIDPattern   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// VideoService изолирует знание о форме ссылок сторонних видеохостингов.
type VideoService struct{}

func NewVideoService() *VideoService {
	return &VideoService{}
}

// Resolve превращает исходную ссылку в пригодную для встраивания.
// Нераспознанная ссылка даёт пустую строку — вызывающий обязан трактовать
// её как «встраивание невозможно» и ничего не отображать.
func (s *VideoService) Resolve(url string, videoType models.VideoType) string {
	switch videoType {
	case models.VideoTypeYouTube:
		m := youtubeIDPattern.FindStringSubmatch(url)
		if m == nil {
			return ""
		}
		return "https://www.youtube.com/embed/" + m[1]
	case models.VideoTypeVimeo:
		m := vimeoIDPattern.FindStringSubmatch(url)
		if m == nil {
			return ""
		}
		return "https://player.vimeo.com/video/" + m[1]
	case models.VideoTypeDirect:
		return url
	}
	return ""
}
