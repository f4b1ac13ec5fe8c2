package model

// 请求数据结构（表单绑定）
type (
	LoginReq struct {
		Username string `form:"username"`
		Password string `form:"password"` // 只收不用：不校验也不保存
	}

	RegisterReq struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}

	PostReq struct {
		Text string `form:"text"`
	}

	ProfileUpdateReq struct {
		Username string `form:"username"`
	}
)

// 模板视图数据
type (
	PostView struct {
		Author string
		Text   string
		Date   string // ISO-8601
	}

	FeedData struct {
		IsLoggedIn bool
		Username   string
		Posts      []PostView
	}

	AuthData struct {
		IsLoggedIn bool
		Title      string // "Login" 或 "Register"
		Action     string
	}

	ProfileData struct {
		IsLoggedIn  bool
		ProfileName string // 路由参数里的用户名
		Editable    bool   // 被浏览的主页是否属于当前用户
		Username    string // 编辑框的初始值
	}
)
