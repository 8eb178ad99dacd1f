package repository

import "errors"

var (
    ErrUserNotFound = errors.New("user not found")
    ErrPostNotFound = errors.New("post not found")
    // ErrDuplicateEntry 唯一键冲突（username / email）
    ErrDuplicateEntry = errors.New("duplicate entry")
)
