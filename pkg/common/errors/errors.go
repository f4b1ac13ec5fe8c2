// pkg/common/errors/errors.go
package errors

import (
	"errors"

	hzte "github.com/cloudwego/hertz/pkg/common/errors"
)

// 定义原始错误：只保留应用真实可产生的两类
var (
	rawErrUnauthenticated = errors.New("unauthenticated: no active session")
	rawErrStorageInternal = errors.New("storage internal error")
)

// 包装成 Hertz 错误类型
var (
	ErrUnauthenticated = hzte.New(rawErrUnauthenticated, hzte.ErrorTypePublic, nil)
	ErrStorageInternal = hzte.New(rawErrStorageInternal, hzte.ErrorTypePrivate, nil)
)
