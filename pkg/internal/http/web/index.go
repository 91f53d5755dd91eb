package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func MapControllers(app *fiber.App, baseURL string) {
	Session = session.New(session.Config{
		CookieHTTPOnly: true,
		Expiration:     7 * 24 * time.Hour,
	})

	app.Use(loadAccount)

	root := app.Group(baseURL)
	{
		root.Get("/", listIndex)
		root.Get("/follow", authRequired, listFollowed)
		root.Get("/group/:slug", listGroupPosts)
		root.Get("/profile/:name", getProfile)
		root.Post("/profile/:name/follow", authRequired, followAccount)
		root.Post("/profile/:name/unfollow", authRequired, unfollowAccount)

		root.Get("/posts/create", authRequired, createPostPage)
		root.Post("/posts/create", authRequired, createPost)
		root.Get("/posts/:postId", getPost)
		root.Get("/posts/:postId/edit", authRequired, editPostPage)
		root.Post("/posts/:postId/edit", authRequired, editPost)
		root.Post("/posts/:postId/comments", authRequired, createComment)

		auth := root.Group("/auth")
		{
			auth.Get("/login", loginPage)
			auth.Post("/login", doLogin)
			auth.Get("/register", registerPage)
			auth.Post("/register", doRegister)
			auth.Post("/logout", doLogout)
		}
	}
}
