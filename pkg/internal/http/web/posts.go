package web

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/http/exts"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/inkstream/inkstream/pkg/internal/services"
	"gorm.io/datatypes"
)

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such post")
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comments, err := services.ListComment(item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("posts/detail", renderData(c, fiber.Map{
		"post":         item,
		"comments":     comments,
		"form":         CommentForm{},
		"commentError": takeFlash(c, "comment_error"),
	}))
}

func createPostPage(c *fiber.Ctx) error {
	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("posts/create", renderData(c, fiber.Map{
		"form":   PostForm{},
		"groups": groups,
		"errors": exts.FieldErrors{},
	}))
}

func createPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	form, groupID, image, fields, err := bindPostForm(c)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		groups, _ := services.ListGroup()
		return c.Render("posts/create", renderData(c, fiber.Map{
			"form":   form,
			"groups": groups,
			"errors": fields,
		}))
	}

	item := models.Post{
		Text:    form.Text,
		GroupID: groupID,
		Image:   image,
	}

	if _, err := services.NewPost(user, item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", user.Name), fiber.StatusFound)
}

func editPostPage(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	item, err := resolveOwnPost(c)
	if err != nil {
		return err
	}
	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
	}

	form := PostForm{Text: item.Text}
	if item.GroupID != nil {
		form.Group = strconv.Itoa(int(*item.GroupID))
	}

	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("posts/create", renderData(c, fiber.Map{
		"form":   form,
		"groups": groups,
		"errors": exts.FieldErrors{},
		"isEdit": true,
		"postId": item.ID,
	}))
}

func editPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	item, err := resolveOwnPost(c)
	if err != nil {
		return err
	}

	// Not a validation failure: someone else's post bounces straight back
	// to the detail page with nothing written.
	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
	}

	form, groupID, image, fields, err := bindPostForm(c)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		groups, _ := services.ListGroup()
		return c.Render("posts/create", renderData(c, fiber.Map{
			"form":   form,
			"groups": groups,
			"errors": fields,
			"isEdit": true,
			"postId": item.ID,
		}))
	}

	item.Text = form.Text
	item.GroupID = groupID
	item.Group = nil
	if image != nil {
		item.Image = image
	}

	if _, err := services.EditPost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
}

func resolveOwnPost(c *fiber.Ctx) (models.Post, error) {
	var item models.Post
	id, err := c.ParamsInt("postId")
	if err != nil {
		return item, fiber.NewError(fiber.StatusNotFound, "no such post")
	}

	item, err = services.GetPost(database.C, uint(id))
	if err != nil {
		return item, fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return item, nil
}

// bindPostForm validates the shared create/edit submission: required text,
// an optional existing group and an optional image upload.
func bindPostForm(c *fiber.Ctx) (PostForm, *uint, datatypes.JSONMap, exts.FieldErrors, error) {
	var form PostForm
	fields, err := exts.BindAndValidate(c, &form)
	if err != nil {
		return form, nil, nil, nil, err
	}
	if fields == nil {
		fields = exts.FieldErrors{}
	}

	var groupID *uint
	if len(form.Group) > 0 {
		gid, err := strconv.Atoi(form.Group)
		if err != nil {
			fields["group"] = "Choose an existing group."
		} else if group, err := services.GetGroupWithID(uint(gid)); err != nil {
			fields["group"] = "Choose an existing group."
		} else {
			groupID = &group.ID
		}
	}

	var image datatypes.JSONMap
	if file, err := c.FormFile("image"); err == nil && file != nil {
		if image, err = services.SaveImageAttachment(file); err != nil {
			fields["image"] = "Upload a valid image."
		}
	}

	return form, groupID, image, fields, nil
}
