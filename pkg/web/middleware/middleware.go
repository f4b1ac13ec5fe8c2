package middleware

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/hertz-contrib/cors"

	"instaboose/pkg/common/config"
)

// RequestIDMiddleware 为每个请求生成追踪ID并回写响应头
func RequestIDMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		requestID := string(ctx.GetHeader("X-Request-ID"))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx.Set("request_id", requestID)
		ctx.Response.Header.Set("X-Request-ID", requestID)
		ctx.Next(c)
	}
}

// LoggerMiddleware 结构化的请求日志记录
func LoggerMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c) // 放行到后续处理器
		latency := time.Since(start)

		// 结构化日志输出
		hlog.CtxTracef(c, "| %3d | %13v | %15s | %-7s | %s | ReqID=%s",
			ctx.Response.StatusCode(),
			latency,
			ctx.ClientIP(),
			ctx.Method(),
			ctx.Path(),
			ctx.GetString("request_id"),
		)
	}
}

// RecoveryMiddleware 增强型异常捕获（带配置依赖版本）
func RecoveryMiddleware(cfg *config.Config) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				// 获取调用堆栈
				stack := string(debug.Stack())

				hlog.CtxErrorf(c, "[PANIC RECOVERED] %v\n%s", err, stack)

				// 生产环境处理
				if cfg.IsProd() {
					ctx.AbortWithStatusJSON(500, map[string]interface{}{
						"code":    500,
						"message": "internal server error",
					})
				} else { // 开发环境显示详细错误
					ctx.AbortWithStatusJSON(500, map[string]interface{}{
						"code":  500,
						"error": fmt.Sprintf("%v", err),
						"stack": strings.Split(stack, "\n"),
					})
				}
			}
		}()
		ctx.Next(c)
	}
}

// CORSMiddleware 安全的跨域配置
func CORSMiddleware(corsConfig config.CORSConfig) app.HandlerFunc {
	return cors.New(
		cors.Config{
			AllowOrigins:     corsConfig.AllowOrigins,
			AllowMethods:     corsConfig.AllowMethods,
			AllowHeaders:     corsConfig.AllowHeaders,
			ExposeHeaders:    corsConfig.ExposeHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAge,
			// 动态校验来源
			AllowOriginFunc: func(origin string) bool {
				for _, domain := range corsConfig.TrustedDomains {
					if strings.Contains(origin, domain) {
						return true
					}
				}
				return false
			},
		},
	)
}

// RateLimitMiddleware 令牌桶算法限流。
// 令牌桶由调用方创建并负责 Stop
func RateLimitMiddleware(limiter *TokenBucket) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		if !limiter.Allow() {
			hlog.CtxInfof(c, "[RATE LIMIT] path=%s", ctx.Path())
			ctx.AbortWithStatusJSON(429, map[string]interface{}{
				"code":    429001,
				"message": "too many requests",
			})
			return
		}
		ctx.Next(c)
	}
}

// 令牌桶实现
type TokenBucket struct {
	capacity int
	tokens   chan struct{}
	rate     time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewTokenBucket(rate int, interval time.Duration) *TokenBucket {
	tb := &TokenBucket{
		capacity: rate,
		tokens:   make(chan struct{}, rate),
		rate:     interval,
		stop:     make(chan struct{}),
	}

	// 初始装满，避免冷启动阶段误限流
	for i := 0; i < rate; i++ {
		tb.tokens <- struct{}{}
	}

	// 定时器生产令牌，Stop 后退出
	go func() {
		ticker := time.NewTicker(tb.rate)
		defer ticker.Stop()
		for {
			select {
			case <-tb.stop:
				return
			case <-ticker.C:
				select {
				case tb.tokens <- struct{}{}:
				default:
				}
			}
		}
	}()
	return tb
}

func (tb *TokenBucket) Allow() bool {
	select {
	case <-tb.tokens:
		return true
	default:
		return false
	}
}

// Stop 终止补充令牌的后台协程，可重复调用
func (tb *TokenBucket) Stop() {
	tb.stopOnce.Do(func() {
		close(tb.stop)
	})
}
