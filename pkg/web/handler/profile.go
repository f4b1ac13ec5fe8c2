// ----------- pkg/web/handler/profile.go -----------
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

type ProfileHandler struct {
	Sessions *session.Store
	HTML     render.HTMLRender
}

func NewProfileHandler(sessions *session.Store, html render.HTMLRender) *ProfileHandler {
	return &ProfileHandler{
		Sessions: sessions,
		HTML:     html,
	}
}

// Show 个人主页：任何人可看任何用户名的主页；
// 只有被浏览的用户名等于当前会话用户名时才渲染编辑控件
func (h *ProfileHandler) Show(ctx context.Context, c *app.RequestContext) {
	profileName := c.Param("username")
	current, loggedIn := h.Sessions.Current()
	editable := loggedIn && current.Username == profileName

	data := model.ProfileData{
		IsLoggedIn:  loggedIn,
		ProfileName: profileName,
		Editable:    editable,
	}
	if editable {
		data.Username = current.Username
	}
	c.Render(consts.StatusOK, h.HTML.Instance("profile.html", data))
}

// Update 修改用户名：仅当浏览的是自己的主页时生效。
// 历史帖子保留旧作者名，页面回到原路由（路由参数仍是旧名，
// 因此编辑控件随之消失）
func (h *ProfileHandler) Update(ctx context.Context, c *app.RequestContext) {
	profileName := c.Param("username")

	var req model.ProfileUpdateReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, "bad request")
		return
	}

	current, loggedIn := h.Sessions.Current()
	if loggedIn && current.Username == profileName {
		if user, ok := h.Sessions.Rename(req.Username); ok {
			hlog.CtxInfof(ctx, "profile renamed: %s -> %s", profileName, user.Username)
		}
	}

	c.Redirect(consts.StatusSeeOther, []byte("/profile/"+profileName))
}
