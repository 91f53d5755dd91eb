package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/inkstream/inkstream/pkg/internal/paginator"
	"github.com/inkstream/inkstream/pkg/internal/services"
	"github.com/spf13/viper"
)

func getProfile(c *fiber.Ctx) error {
	author, err := services.GetAccount(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	posts, err := services.ListPost(
		services.FilterPostWithAuthor(database.C, author.ID),
		services.PostDefaultOrder,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	page := paginator.Paginate(posts, c.QueryInt("page", 1), viper.GetInt("content.posts_per_page"))

	// Anonymous viewers never follow anyone.
	var following bool
	if user, ok := c.Locals("user").(models.Account); ok {
		if follow, err := services.GetFollow(user, author); err == nil {
			following = follow != nil
		}
	}

	followers, _ := services.CountFollower(author)

	return c.Render("profile", renderData(c, fiber.Map{
		"author":    author,
		"page":      page,
		"following": following,
		"followers": followers,
	}))
}

func followAccount(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	target, err := services.GetAccount(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Following yourself quietly does nothing.
	if target.ID != user.ID {
		if _, err := services.FollowAccount(user, target); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", target.Name), fiber.StatusFound)
}

func unfollowAccount(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	target, err := services.GetAccount(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAccount(user, target); err != nil {
		if errors.Is(err, services.ErrNotFollowing) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", target.Name), fiber.StatusFound)
}
