package repository

import (
    "context"
    "errors"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/gin-blog/internal/model"
)

type UserRepository interface {
    Create(ctx context.Context, user *model.User) error
    GetByID(ctx context.Context, id string) (*model.User, error)
    GetByEmail(ctx context.Context, email string) (*model.User, error)
    GetByUsername(ctx context.Context, username string) (*model.User, error)
    // UsernameTaken / EmailTaken 检查唯一性；excludeID 用于更新资料时排除自己
    UsernameTaken(ctx context.Context, username, excludeID string) (bool, error)
    EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
    Update(ctx context.Context, user *model.User) error
    UpdatePassword(ctx context.Context, id, hash string) error
}

type userRepository struct {
    db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
    if user.ID == "" {
        user.ID = uuid.New().String()
    }
    err := r.db.WithContext(ctx).Create(user).Error
    if errors.Is(err, gorm.ErrDuplicatedKey) {
        return ErrDuplicateEntry
    }
    return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
    var u model.User
    err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, ErrUserNotFound
    }
    if err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
    var u model.User
    err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, ErrUserNotFound
    }
    if err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
    var u model.User
    err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, ErrUserNotFound
    }
    if err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) UsernameTaken(ctx context.Context, username, excludeID string) (bool, error) {
    var cnt int64
    q := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username)
    if excludeID != "" {
        q = q.Where("id <> ?", excludeID)
    }
    if err := q.Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *userRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
    var cnt int64
    q := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email)
    if excludeID != "" {
        q = q.Where("id <> ?", excludeID)
    }
    if err := q.Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
    err := r.db.WithContext(ctx).Model(user).
        Updates(map[string]interface{}{
            "username": user.Username,
            "email":    user.Email,
            "avatar":   user.Avatar,
        }).Error
    if errors.Is(err, gorm.ErrDuplicatedKey) {
        return ErrDuplicateEntry
    }
    return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, hash string) error {
    res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("password", hash)
    if res.Error != nil {
        return res.Error
    }
    if res.RowsAffected == 0 {
        return ErrUserNotFound
    }
    return nil
}
