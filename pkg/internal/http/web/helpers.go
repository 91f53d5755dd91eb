package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkstream/inkstream/pkg/internal/models"
)

func renderData(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if user, ok := c.Locals("user").(models.Account); ok {
		data["user"] = user
	}
	return data
}

func setFlash(c *fiber.Ctx, key, message string) {
	s, err := Session.Get(c)
	if err != nil {
		return
	}
	s.Set("flash."+key, message)
	_ = s.Save()
}

func takeFlash(c *fiber.Ctx, key string) string {
	s, err := Session.Get(c)
	if err != nil {
		return ""
	}
	message, _ := s.Get("flash." + key).(string)
	if len(message) > 0 {
		s.Delete("flash." + key)
		_ = s.Save()
	}
	return message
}
