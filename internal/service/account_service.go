package service

import (
    "context"
    "io"

    "go.uber.org/zap"

    "github.com/d60-Lab/gin-blog/internal/model"
    "github.com/d60-Lab/gin-blog/internal/repository"
    "github.com/d60-Lab/gin-blog/internal/storage"
    "github.com/d60-Lab/gin-blog/pkg/logger"
)

type AccountService interface {
    // UpdateAccount 改用户名/邮箱，avatar 非 nil 时同时换头像。
    // 唯一性校验排除 user 自身。
    UpdateAccount(ctx context.Context, user *model.User, username, email string, avatar io.Reader, avatarName string) (*model.User, error)
    GetByUsername(ctx context.Context, username string) (*model.User, error)
    GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type accountService struct {
    userRepo repository.UserRepository
    avatars  *storage.AvatarStore
}

func NewAccountService(userRepo repository.UserRepository, avatars *storage.AvatarStore) AccountService {
    return &accountService{userRepo: userRepo, avatars: avatars}
}

func (s *accountService) UpdateAccount(ctx context.Context, user *model.User, username, email string, avatar io.Reader, avatarName string) (*model.User, error) {
    taken, err := s.userRepo.UsernameTaken(ctx, username, user.ID)
    if err != nil {
        return nil, err
    }
    if taken {
        return nil, ErrUsernameTaken
    }
    taken, err = s.userRepo.EmailTaken(ctx, email, user.ID)
    if err != nil {
        return nil, err
    }
    if taken {
        return nil, ErrEmailTaken
    }

    if avatar != nil {
        name, err := s.avatars.Save(avatar, avatarName)
        if err != nil {
            return nil, err
        }
        user.Avatar = name
    }
    user.Username = username
    user.Email = email
    if err := s.userRepo.Update(ctx, user); err != nil {
        return nil, err
    }
    logger.Info("account updated", zap.String("user_id", user.ID))
    return user, nil
}

func (s *accountService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
    return s.userRepo.GetByUsername(ctx, username)
}

func (s *accountService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
    return s.userRepo.GetByEmail(ctx, email)
}
