package models

import (
	"encoding/json"
)

// OptionalString 区分 JSON 字段的三种状态：缺失、显式 null、有值。
// 部分更新里 due_date 的“传 null 清空 / 不传保持原值”语义依赖这个区分。
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON 只有字段出现在载荷里才会被调用
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskRequest 创建任务请求
type CreateTaskRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	DueDate            *string  `json:"due_date"`
	Status             string   `json:"status"`
	Priority           string   `json:"priority"`
	EisenhowerQuadrant string   `json:"eisenhower_quadrant"`
	Completed          bool     `json:"completed"`
	TagIDs             []string `json:"tag_ids"`
}

// UpdateTaskRequest 部分更新请求，指针字段为 nil 表示载荷里没有该字段
type UpdateTaskRequest struct {
	Title              *string        `json:"title"`
	Description        *string        `json:"description"`
	Status             *string        `json:"status"`
	Priority           *string        `json:"priority"`
	EisenhowerQuadrant *string        `json:"eisenhower_quadrant"`
	Completed          *bool          `json:"completed"`
	DueDate            OptionalString `json:"due_date"`
	TagIDs             *[]string      `json:"tag_ids"`
}

// CompleteTaskRequest 完成状态请求，completed 字段缺失时必须报 400
type CompleteTaskRequest struct {
	Completed *bool `json:"completed"`
}

// CreateTagRequest 创建标签请求
type CreateTagRequest struct {
	Name string `json:"name"`
}

// CreatePomodoroRequest 番茄钟记录请求
type CreatePomodoroRequest struct {
	Duration int `json:"duration"`
}
