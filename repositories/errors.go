package repositories

import (
	"errors"
)

// 仓库层错误，控制器用 errors.Is 映射为 HTTP 状态码
var (
	// ErrValidation 输入缺失或格式错误
	ErrValidation = errors.New("输入校验失败")
	// ErrNotFound 实体不存在，或不属于当前用户（所有权不匹配统一按不存在处理）
	ErrNotFound = errors.New("记录不存在")
	// ErrConflict 唯一性冲突
	ErrConflict = errors.New("记录已存在")
	// ErrUnauthorized 凭据无效
	ErrUnauthorized = errors.New("凭据无效")
)
