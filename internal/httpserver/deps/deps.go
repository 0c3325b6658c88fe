package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tagmark/tagmark/internal/auth"
	"github.com/tagmark/tagmark/internal/logger"
	"github.com/tagmark/tagmark/internal/scraper"
	"github.com/tagmark/tagmark/internal/service"
	"github.com/tagmark/tagmark/internal/session"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Service  *service.BookmarkService // bookmark query engine
	Sessions *session.Registry        // per-session selection state
	Users    *auth.Users              // basic-auth credential check
	Scraper  *scraper.Scraper         // page title scraper (nil disables /api/title)

	RedisClient      *redis.Client // nil on the memory backend, used by readyz
	TitleScrapeOnAdd bool          // fill missing titles during bulk upload
}
