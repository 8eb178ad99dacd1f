package service

import (
    "context"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "go.uber.org/zap"

    "github.com/d60-Lab/gin-blog/internal/model"
    "github.com/d60-Lab/gin-blog/internal/repository"
    "github.com/d60-Lab/gin-blog/pkg/logger"
)

// ResetTokenService 签发/校验密码重置令牌。
// Verify 对一切失败（签名、格式、过期、用户已不存在）统一返回 nil。
type ResetTokenService interface {
    Issue(user *model.User) (string, error)
    IssueWithTTL(user *model.User, ttl time.Duration) (string, error)
    Verify(ctx context.Context, token string) *model.User
}

type resetTokenService struct {
    userRepo   repository.UserRepository
    secret     []byte
    defaultTTL time.Duration
}

func NewResetTokenService(userRepo repository.UserRepository, secret string, defaultTTL time.Duration) ResetTokenService {
    if defaultTTL <= 0 {
        defaultTTL = 30 * time.Minute
    }
    return &resetTokenService{userRepo: userRepo, secret: []byte(secret), defaultTTL: defaultTTL}
}

func (s *resetTokenService) Issue(user *model.User) (string, error) {
    return s.IssueWithTTL(user, s.defaultTTL)
}

func (s *resetTokenService) IssueWithTTL(user *model.User, ttl time.Duration) (string, error) {
    now := time.Now()
    claims := jwt.RegisteredClaims{
        Subject:   user.ID,
        IssuedAt:  jwt.NewNumericDate(now),
        ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
    }
    return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *resetTokenService) Verify(ctx context.Context, token string) *model.User {
    parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, jwt.ErrSignatureInvalid
        }
        return s.secret, nil
    })
    if err != nil || !parsed.Valid {
        // 不向调用方区分失败原因
        logger.Debug("reset token rejected", zap.Error(err))
        return nil
    }
    claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
    if !ok || claims.Subject == "" {
        return nil
    }
    user, err := s.userRepo.GetByID(ctx, claims.Subject)
    if err != nil {
        return nil
    }
    return user
}
