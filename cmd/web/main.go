package main

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app/server"

	"instaboose/pkg/common/config"
	postmodel "instaboose/pkg/core/post/model"
	dao "instaboose/pkg/core/post/repository/dao/impl"
	"instaboose/pkg/core/post/service"
	"instaboose/pkg/core/user/session"
	"instaboose/pkg/web/handler"
	"instaboose/pkg/web/middleware"
	"instaboose/pkg/web/router"
)

func main() {
	// 初始化配置
	cfg := config.Load()

	// 初始化数据库连接（默认内存库：进程重启即清空）
	db, err := cfg.InitDB()
	if err != nil {
		panic("Failed to initialize database: " + err.Error())
	}

	// 建表
	if err := postmodel.AutoMigrate(db); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}

	// 组装存储与业务层
	sessions := session.NewStore()
	posts := service.NewPostService(dao.NewPostRepository(db), sessions)

	// 加载视图模板
	htmlRender := handler.NewHTMLRender("views/*.html")

	// 限流令牌桶，随服务停机一并停止
	limiter := middleware.NewTokenBucket(
		cfg.Middleware.RateLimit.Rate,
		cfg.Middleware.RateLimit.Interval,
	)

	// 创建Hertz实例
	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		limiter.Stop()
	})

	// 注册路由
	router.Register(h, cfg, db, htmlRender, limiter, sessions, posts)

	// 启动服务
	h.Spin()
}
