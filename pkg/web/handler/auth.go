// ----------- pkg/web/handler/auth.go -----------
package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server/render"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"instaboose/pkg/core/user/session"
	"instaboose/pkg/web/model"
)

type AuthHandler struct {
	Sessions *session.Store
	HTML     render.HTMLRender
}

func NewAuthHandler(sessions *session.Store, html render.HTMLRender) *AuthHandler {
	return &AuthHandler{
		Sessions: sessions,
		HTML:     html,
	}
}

// LoginPage 登录表单。已登录用户同样可达：路由不设守卫
func (h *AuthHandler) LoginPage(ctx context.Context, c *app.RequestContext) {
	c.Render(consts.StatusOK, h.HTML.Instance("login.html", model.AuthData{
		IsLoggedIn: h.Sessions.IsLoggedIn(),
		Title:      "Login",
		Action:     "/login",
	}))
}

// Login 登录动作：忽略密码，无失败分支
func (h *AuthHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req model.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, "bad request")
		return
	}

	user := h.Sessions.Login(req.Username, req.Password)
	hlog.CtxInfof(ctx, "user logged in: %s", user.Username)
	c.Redirect(consts.StatusSeeOther, []byte("/"))
}

// RegisterPage 注册表单
func (h *AuthHandler) RegisterPage(ctx context.Context, c *app.RequestContext) {
	c.Render(consts.StatusOK, h.HTML.Instance("register.html", model.AuthData{
		IsLoggedIn: h.Sessions.IsLoggedIn(),
		Title:      "Register",
		Action:     "/register",
	}))
}

// Register 注册动作：效果与登录完全相同，不做任何冲突检查
func (h *AuthHandler) Register(ctx context.Context, c *app.RequestContext) {
	var req model.RegisterReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, "bad request")
		return
	}

	user := h.Sessions.Register(req.Username, req.Password)
	hlog.CtxInfof(ctx, "user registered: %s", user.Username)
	c.Redirect(consts.StatusSeeOther, []byte("/"))
}

// Logout 登出动作，总是回到首页
func (h *AuthHandler) Logout(ctx context.Context, c *app.RequestContext) {
	h.Sessions.Logout()
	c.Redirect(consts.StatusSeeOther, []byte("/"))
}
