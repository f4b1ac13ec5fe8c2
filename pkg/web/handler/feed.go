// ----------- pkg/web/handler/feed.go -----------
package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server/render"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	apperrors "instaboose/pkg/common/errors"
	postmodel "instaboose/pkg/core/post/model"
	"instaboose/pkg/core/post/service"
	"instaboose/pkg/core/user/session"
	"instaboose/pkg/web/model"
)

type FeedHandler struct {
	Sessions *session.Store
	Posts    *service.PostService
	HTML     render.HTMLRender
}

func NewFeedHandler(sessions *session.Store, posts *service.PostService, html render.HTMLRender) *FeedHandler {
	return &FeedHandler{
		Sessions: sessions,
		Posts:    posts,
		HTML:     html,
	}
}

// Feed 首页：无条件列出全部帖子，发帖控件只在登录后渲染
func (h *FeedHandler) Feed(ctx context.Context, c *app.RequestContext) {
	posts, err := h.Posts.List(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "feed listing failed: %v", err)
		c.String(consts.StatusInternalServerError, "internal server error")
		return
	}

	user, loggedIn := h.Sessions.Current()
	data := model.FeedData{
		IsLoggedIn: loggedIn,
		Username:   user.Username,
		Posts:      toPostViews(posts),
	}
	c.Render(consts.StatusOK, h.HTML.Instance("feed.html", data))
}

// CreatePost 发帖动作，完成后回到首页
func (h *FeedHandler) CreatePost(ctx context.Context, c *app.RequestContext) {
	var req model.PostReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, "bad request")
		return
	}

	if _, err := h.Posts.Publish(ctx, req.Text); err != nil {
		if apperrors.IsUnauthenticated(err) {
			// 未登录时发帖控件本不渲染；直接提交则引导去登录
			c.Redirect(consts.StatusFound, []byte("/login"))
			return
		}
		hlog.CtxErrorf(ctx, "post creation failed: %v", err)
		c.String(consts.StatusInternalServerError, "internal server error")
		return
	}

	c.Redirect(consts.StatusSeeOther, []byte("/"))
}

func toPostViews(posts []postmodel.Post) []model.PostView {
	views := make([]model.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, model.PostView{
			Author: p.Author,
			Text:   p.Text,
			Date:   p.Date.Format(time.RFC3339),
		})
	}
	return views
}
