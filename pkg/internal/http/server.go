package http

import (
	"embed"
	"errors"
	"io/fs"
	nhttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/inkstream/inkstream/pkg/internal/http/web"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

//go:embed views
var viewsFS embed.FS

type App struct {
	app *fiber.App
}

func NewServer() *App {
	views, _ := fs.Sub(viewsFS, "views")
	engine := html.NewFileSystem(nhttp.FS(views), ".html")

	app := fiber.New(fiber.Config{
		AppName:               "Inkstream",
		ServerHeader:          "Inkstream",
		DisableStartupMessage: true,
		Views:                 engine,
		ViewsLayout:           "layouts/main",
		BodyLimit:             16 << 20,
		ErrorHandler:          renderError,
	})

	app.Use(accessLogger)

	app.Static("/uploads", viper.GetString("storage.uploads"))

	web.MapControllers(app, "")

	return &App{app}
}

// Fiber returns the underlying application, used by tests to drive requests
// without binding a socket.
func (v *App) Fiber() *fiber.App {
	return v.app
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("server.bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}

func accessLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	log.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("Handled one request.")

	return err
}

// renderError keeps every client-facing failure a normal page: unknown
// resources get the not found view, everything else a plain status reply.
func renderError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("errors/404", fiber.Map{
			"path": c.Path(),
		})
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
	}

	return c.Status(code).SendString(err.Error())
}
