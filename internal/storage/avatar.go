package storage

import (
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"

    "github.com/disintegration/imaging"
    "github.com/google/uuid"
)

// DefaultAvatar 新用户的占位头像
const DefaultAvatar = "default.jpg"

const avatarBound = 125

// AvatarStore 把上传的头像等比缩放到 125×125 以内，存成随机文件名。
// 随机名避免并发上传或同名文件互相覆盖。
type AvatarStore struct {
    dir string
}

func NewAvatarStore(dir string) (*AvatarStore, error) {
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return nil, fmt.Errorf("create avatar dir: %w", err)
    }
    return &AvatarStore{dir: dir}, nil
}

func (s *AvatarStore) Dir() string { return s.dir }

// Save 解码、缩放并落盘，返回生成的文件名。
func (s *AvatarStore) Save(r io.Reader, originalName string) (string, error) {
    img, err := imaging.Decode(r)
    if err != nil {
        return "", fmt.Errorf("decode avatar: %w", err)
    }
    thumb := imaging.Fit(img, avatarBound, avatarBound, imaging.Lanczos)

    ext := strings.ToLower(filepath.Ext(originalName))
    switch ext {
    case ".jpg", ".jpeg", ".png", ".gif":
    default:
        ext = ".jpg"
    }
    name := uuid.New().String() + ext
    if err := imaging.Save(thumb, filepath.Join(s.dir, name)); err != nil {
        return "", fmt.Errorf("save avatar: %w", err)
    }
    return name, nil
}
