package models

// Tag 标签模型，(name, user_id) 对用户内唯一
type Tag struct {
	ID     string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(50);not null;uniqueIndex:idx_tags_user_name" json:"name"`
	UserID string `gorm:"type:varchar(50);not null;uniqueIndex:idx_tags_user_name;index" json:"user_id"`
}
