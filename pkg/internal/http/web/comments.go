package web

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/http/exts"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/inkstream/inkstream/pkg/internal/services"
)

// createComment always lands back on the detail page; a rejected submission
// leaves a flash message behind instead of a dedicated error response.
func createComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such post")
	}

	post, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var form CommentForm
	fields, err := exts.BindAndValidate(c, &form)
	if err != nil {
		return err
	}

	if len(fields) > 0 {
		setFlash(c, "comment_error", fields.Get("text"))
		return c.Redirect(fmt.Sprintf("/posts/%d", post.ID), fiber.StatusFound)
	}

	if _, err := services.NewComment(user, post, form.Text); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", post.ID), fiber.StatusFound)
}
