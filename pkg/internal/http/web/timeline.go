package web

import (
	"bytes"
	"context"
	"fmt"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/gofiber/fiber/v2"
	localCache "github.com/inkstream/inkstream/pkg/internal/cache"
	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/inkstream/inkstream/pkg/internal/paginator"
	"github.com/inkstream/inkstream/pkg/internal/services"
	"github.com/spf13/viper"
)

const indexCacheKeyPrefix = "index-page"

// listIndex serves the front page out of a short-lived cache of rendered
// bytes. The key carries the full query string so one page's rendition can
// never answer for another; entries die by expiry only, so a fresh post
// shows up once the TTL lapses.
func listIndex(c *fiber.Ctx) error {
	cacheKey := fmt.Sprintf("%s#%s", indexCacheKeyPrefix, c.Request().URI().QueryArgs().String())
	cacheManager := cache.New[[]byte](localCache.S)

	if cached, err := cacheManager.Get(c.UserContext(), cacheKey); err == nil {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(cached)
	}

	posts, err := services.ListPost(database.C, services.PostDefaultOrder)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	page := paginator.Paginate(posts, c.QueryInt("page", 1), viper.GetInt("content.posts_per_page"))

	if err := c.Render("index", renderData(c, fiber.Map{
		"page": page,
	})); err != nil {
		return err
	}

	_ = cacheManager.Set(c.UserContext(), cacheKey,
		bytes.Clone(c.Response().Body()),
		store.WithExpiration(viper.GetDuration("content.index_cache_ttl")),
		store.WithTags([]string{indexCacheKeyPrefix}),
	)

	return nil
}

// FlushIndexPages drops every cached front page rendition. Post creation
// deliberately does not call it; tests and operators do.
func FlushIndexPages() {
	cacheManager := cache.New[[]byte](localCache.S)
	_ = cacheManager.Invalidate(context.Background(), store.WithInvalidateTags([]string{indexCacheKeyPrefix}))
}

func listFollowed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	posts, err := services.ListPost(
		services.FilterPostFollowed(database.C, user),
		services.PostDefaultOrder,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	page := paginator.Paginate(posts, c.QueryInt("page", 1), viper.GetInt("content.posts_per_page"))

	return c.Render("follow", renderData(c, fiber.Map{
		"page": page,
	}))
}
