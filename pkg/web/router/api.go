package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/app/server/render"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"gorm.io/gorm"

	"instaboose/pkg/common/config"
	"instaboose/pkg/core/post/service"
	"instaboose/pkg/core/user/session"
	"instaboose/pkg/web/handler"
	"instaboose/pkg/web/middleware"
)

// Register 注册所有路由。
// 路由不设任何会话守卫：已登录用户依然能打开 /login 和 /register，
// 仅导航链接按会话状态条件渲染。
// limiter 由调用方持有，便于在停机或测试清理时 Stop
func Register(h *server.Hertz, cfg *config.Config, db *gorm.DB, htmlRender render.HTMLRender,
	limiter *middleware.TokenBucket, sessions *session.Store, posts *service.PostService) {
	// 初始化Handler实例
	healthHandler := handler.NewHealthCheckHandler(db)
	feedHandler := handler.NewFeedHandler(sessions, posts, htmlRender)
	authHandler := handler.NewAuthHandler(sessions, htmlRender)
	profileHandler := handler.NewProfileHandler(sessions, htmlRender)

	// 注册全局中间件（按执行顺序）
	h.Use(
		middleware.RecoveryMiddleware(cfg),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.CORSMiddleware(cfg.Middleware.CORS),
		middleware.RateLimitMiddleware(limiter),
	)

	// 基础接口
	h.GET("/health", healthHandler.AdvancedHealthCheck)

	// 视图与动作
	h.GET("/", feedHandler.Feed)
	h.POST("/posts", feedHandler.CreatePost)

	h.GET("/login", authHandler.LoginPage)
	h.POST("/login", authHandler.Login)
	h.GET("/register", authHandler.RegisterPage)
	h.POST("/register", authHandler.Register)
	h.POST("/logout", authHandler.Logout)

	h.GET("/profile/:username", profileHandler.Show)
	h.POST("/profile/:username", profileHandler.Update)

	// 其余路径一律重定向回首页
	h.NoRoute(func(c context.Context, ctx *app.RequestContext) {
		ctx.Redirect(consts.StatusFound, []byte("/"))
	})
}
