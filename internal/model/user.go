package model

import "time"

// User 注册用户（博客作者）
type User struct {
    ID       string `gorm:"primaryKey;type:varchar(36)"`
    Username string `gorm:"type:varchar(20);uniqueIndex:idx_user_username;not null"`
    Email    string `gorm:"type:varchar(120);uniqueIndex:idx_user_email;not null"`
    // Avatar 存 static/profile_pics 下的文件名，永不为空
    Avatar   string `gorm:"type:varchar(41);not null;default:'default.jpg'"`
    Password string `gorm:"type:varchar(60);not null" json:"-"`
    // 一对多：一个用户多篇文章
    Posts     []Post `gorm:"foreignKey:UserID"`
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
