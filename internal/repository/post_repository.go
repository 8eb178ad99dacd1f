package repository

import (
    "context"
    "errors"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/gin-blog/internal/model"
)

type PostRepository interface {
    Create(ctx context.Context, post *model.Post) error
    GetByID(ctx context.Context, id string) (*model.Post, error)
    // List 按 created_at 倒序分页；authorID 为空表示全站
    List(ctx context.Context, authorID string, offset, limit int) ([]*model.Post, error)
    Count(ctx context.Context, authorID string) (int64, error)
    Update(ctx context.Context, post *model.Post) error
    Delete(ctx context.Context, id string) error
}

type postRepository struct {
    db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
    if post.ID == "" {
        post.ID = uuid.New().String()
    }
    if post.CreatedAt.IsZero() {
        post.CreatedAt = time.Now().UTC()
    }
    return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
    var p model.Post
    err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&p).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, ErrPostNotFound
    }
    if err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *postRepository) List(ctx context.Context, authorID string, offset, limit int) ([]*model.Post, error) {
    var res []*model.Post
    q := r.db.WithContext(ctx).Preload("User").Order("created_at DESC")
    if authorID != "" {
        q = q.Where("user_id = ?", authorID)
    }
    err := q.Offset(offset).Limit(limit).Find(&res).Error
    return res, err
}

func (r *postRepository) Count(ctx context.Context, authorID string) (int64, error) {
    var cnt int64
    q := r.db.WithContext(ctx).Model(&model.Post{})
    if authorID != "" {
        q = q.Where("user_id = ?", authorID)
    }
    err := q.Count(&cnt).Error
    return cnt, err
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
    // 只改标题和正文，created_at 保持不变
    return r.db.WithContext(ctx).Model(post).
        Updates(map[string]interface{}{
            "title":   post.Title,
            "content": post.Content,
        }).Error
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
    res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
    if res.Error != nil {
        return res.Error
    }
    if res.RowsAffected == 0 {
        return ErrPostNotFound
    }
    return nil
}
