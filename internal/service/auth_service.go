package service

import (
    "context"
    "errors"
    "fmt"

    "go.uber.org/zap"
    "golang.org/x/crypto/bcrypt"

    "github.com/d60-Lab/gin-blog/internal/model"
    "github.com/d60-Lab/gin-blog/internal/repository"
    "github.com/d60-Lab/gin-blog/pkg/logger"
)

var (
    ErrUsernameTaken = errors.New("username already taken")
    ErrEmailTaken    = errors.New("email already taken")
    ErrPasswordMismatch = errors.New("password confirmation does not match")
    // ErrInvalidCredentials 对“用户不存在”和“密码错误”统一返回，防止枚举
    ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService interface {
    Register(ctx context.Context, username, email, password, confirm string) (*model.User, error)
    Login(ctx context.Context, email, password string) (*model.User, error)
    ResetPassword(ctx context.Context, user *model.User, newPassword string) error
}

type authService struct {
    userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
    return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, username, email, password, confirm string) (*model.User, error) {
    if password != confirm {
        return nil, ErrPasswordMismatch
    }
    taken, err := s.userRepo.UsernameTaken(ctx, username, "")
    if err != nil {
        return nil, err
    }
    if taken {
        return nil, ErrUsernameTaken
    }
    taken, err = s.userRepo.EmailTaken(ctx, email, "")
    if err != nil {
        return nil, err
    }
    if taken {
        return nil, ErrEmailTaken
    }

    hash, err := hashPassword(password)
    if err != nil {
        return nil, err
    }
    user := &model.User{
        Username: username,
        Email:    email,
        Password: hash,
    }
    if err := s.userRepo.Create(ctx, user); err != nil {
        // 并发注册撞到唯一索引时落到这里
        if errors.Is(err, repository.ErrDuplicateEntry) {
            return nil, ErrUsernameTaken
        }
        return nil, err
    }
    logger.Info("user registered", zap.String("user_id", user.ID), zap.String("username", user.Username))
    return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
    user, err := s.userRepo.GetByEmail(ctx, email)
    if err != nil {
        if errors.Is(err, repository.ErrUserNotFound) {
            return nil, ErrInvalidCredentials
        }
        return nil, err
    }
    if !checkPassword(password, user.Password) {
        logger.Warn("login failed", zap.String("email", email))
        return nil, ErrInvalidCredentials
    }
    logger.Info("user logged in", zap.String("user_id", user.ID))
    return user, nil
}

func (s *authService) ResetPassword(ctx context.Context, user *model.User, newPassword string) error {
    hash, err := hashPassword(newPassword)
    if err != nil {
        return err
    }
    return s.userRepo.UpdatePassword(ctx, user.ID, hash)
}

func hashPassword(password string) (string, error) {
    b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return "", fmt.Errorf("hash password: %w", err)
    }
    return string(b), nil
}

func checkPassword(password, hash string) bool {
    return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
