package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/inkstream/inkstream/pkg/internal/http/exts"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/inkstream/inkstream/pkg/internal/services"
)

// Session keeps who is signed in; MapControllers builds it before any route
// is mounted.
var Session *session.Store

const sessionAccountKey = "account_id"

func loadAccount(c *fiber.Ctx) error {
	s, err := Session.Get(c)
	if err != nil {
		return c.Next()
	}

	if id, ok := s.Get(sessionAccountKey).(uint); ok {
		if user, err := services.GetAccountWithID(id); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}

func authRequired(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return c.Redirect("/auth/login", fiber.StatusFound)
	}
	return c.Next()
}

func loginPage(c *fiber.Ctx) error {
	return c.Render("auth/login", renderData(c, fiber.Map{
		"form":   LoginForm{},
		"errors": exts.FieldErrors{},
	}))
}

func doLogin(c *fiber.Ctx) error {
	var form LoginForm
	fields, err := exts.BindAndValidate(c, &form)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		account, err := services.GetAccount(form.Name)
		if err != nil || !services.CheckPassword(account, form.Password) {
			fields = exts.FieldErrors{"name": "Unknown account or wrong password."}
		} else {
			s, err := Session.Get(c)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			s.Set(sessionAccountKey, account.ID)
			if err := s.Save(); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			return c.Redirect("/", fiber.StatusFound)
		}
	}

	return c.Render("auth/login", renderData(c, fiber.Map{
		"form":   form,
		"errors": fields,
	}))
}

func registerPage(c *fiber.Ctx) error {
	return c.Render("auth/register", renderData(c, fiber.Map{
		"form":   RegisterForm{},
		"errors": exts.FieldErrors{},
	}))
}

func doRegister(c *fiber.Ctx) error {
	var form RegisterForm
	fields, err := exts.BindAndValidate(c, &form)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		account, err := services.NewAccount(form.Name, form.Nick, form.Password)
		if err != nil {
			fields = exts.FieldErrors{"name": err.Error()}
		} else {
			s, err := Session.Get(c)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			s.Set(sessionAccountKey, account.ID)
			if err := s.Save(); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			return c.Redirect("/", fiber.StatusFound)
		}
	}

	return c.Render("auth/register", renderData(c, fiber.Map{
		"form":   form,
		"errors": fields,
	}))
}

func doLogout(c *fiber.Ctx) error {
	if s, err := Session.Get(c); err == nil {
		_ = s.Destroy()
	}
	return c.Redirect("/", fiber.StatusFound)
}
