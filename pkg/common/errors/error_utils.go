package errors

import (
	"errors"
	"fmt"
)

// WrapGormError 将底层数据库错误转变为业务可识别错误。
// 帖子存储只有追加和全量读取两条路径，没有按键查询，
// 因此不存在 not-found 分支，一律归并为存储内部错误
func WrapGormError(rawErr error) error {
	if rawErr == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorageInternal, rawErr)
}

// IsUnauthenticated 判断是否为未登录错误
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}
