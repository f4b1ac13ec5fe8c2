package model

import (
	"time"

	"gorm.io/gorm"
)

// Post 帖子记录：创建后不可修改，作者名是创建时刻的快照
type Post struct {
	ID     int64     `gorm:"primaryKey;autoIncrement"` // 自增主键即插入顺序
	Author string    `gorm:"type:varchar(100);not null;index"`
	Text   string    `gorm:"type:text;not null"`
	Date   time.Time `gorm:"index;not null"`
}

// TableName 定义映射表名
func (Post) TableName() string {
	return "feed_posts"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Post{})
}
