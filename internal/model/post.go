package model

import "time"

// Post 博客文章
type Post struct {
    ID      string `gorm:"primaryKey;type:varchar(36)"`
    Title   string `gorm:"type:varchar(100);not null"`
    Content string `gorm:"type:text;not null"`
    UserID  string `gorm:"type:varchar(36);index:idx_post_author;not null"`
    User    User   `gorm:"foreignKey:UserID"`
    // CreatedAt 写入时取 UTC，更新不触碰
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }
