// ----------- pkg/web/handler/render.go -----------
package handler

import (
	"html/template"

	"github.com/cloudwego/hertz/pkg/app/server/render"
)

// NewHTMLRender 启动时解析视图模板，显式注入各Handler。
// 协议服务器只在 Spin 时向请求上下文注入渲染器，
// 显式持有渲染器后，单测请求走 ut 哑协议同样可渲染
func NewHTMLRender(pattern string) render.HTMLRender {
	tmpl := template.Must(template.ParseGlob(pattern))
	return render.HTMLProduction{Template: tmpl}
}
