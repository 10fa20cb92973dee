package utils

import (
	"github.com/google/uuid"
)

// GenerateID 生成实体ID
func GenerateID() string {
	return uuid.New().String()
}
