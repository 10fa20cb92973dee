package utils

import (
	"fmt"
	"time"
)

// 依次尝试的到期时间格式：带时区偏移的完整 RFC3339、
// 不带偏移的日期时间、纯日期
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDueDate 解析 ISO-8601 到期时间并统一转成 UTC 存储。
// 偏移量（Z 或 +HH:MM）参与换算，不会被丢弃。
func ParseDueDate(value string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("无效的日期格式: %q", value)
}
