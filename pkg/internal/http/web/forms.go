package web

// Submission schemas for every form on the site. Binding and validation run
// through exts.BindAndValidate; anything beyond tag checks (group existence,
// image type) happens in the handler that owns the form.

type PostForm struct {
	Text  string `form:"text" validate:"required,max=8192"`
	Group string `form:"group"`
}

type CommentForm struct {
	Text string `form:"text" validate:"required,max=2048"`
}

type LoginForm struct {
	Name     string `form:"name" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type RegisterForm struct {
	Name     string `form:"name" validate:"required,lowercase,alphanum,max=64"`
	Nick     string `form:"nick" validate:"required,max=128"`
	Password string `form:"password" validate:"required,min=6"`
}
