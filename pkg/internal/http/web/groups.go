package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/paginator"
	"github.com/inkstream/inkstream/pkg/internal/services"
	"github.com/spf13/viper"
)

func listGroupPosts(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	posts, err := services.ListPost(
		services.FilterPostWithGroup(database.C, group.ID),
		services.PostDefaultOrder,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	page := paginator.Paginate(posts, c.QueryInt("page", 1), viper.GetInt("content.posts_per_page"))

	return c.Render("group_list", renderData(c, fiber.Map{
		"group": group,
		"page":  page,
	}))
}
