package service_test

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/mock"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"

    "github.com/d60-Lab/gin-blog/internal/model"
    "github.com/d60-Lab/gin-blog/internal/repository"
    "github.com/d60-Lab/gin-blog/internal/repository/mocks"
    "github.com/d60-Lab/gin-blog/internal/service"
)

func TestAuthService_Register_Success(t *testing.T) {
    userRepo := new(mocks.UserRepository)
    svc := service.NewAuthService(userRepo)
    ctx := context.Background()

    userRepo.On("UsernameTaken", ctx, "alice", "").Return(false, nil).Once()
    userRepo.On("EmailTaken", ctx, "a@x.com", "").Return(false, nil).Once()
    userRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
        assert.Equal(t, "alice", u.Username)
        assert.Equal(t, "a@x.com", u.Email)
        // 密码必须已经哈希
        assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pw1")))
        return true
    })).Run(func(args mock.Arguments) {
        args.Get(1).(*model.User).ID = "u-1"
    }).Return(nil).Once()

    user, err := svc.Register(ctx, "alice", "a@x.com", "pw1", "pw1")
    require.NoError(t, err)
    assert.Equal(t, "u-1", user.ID)
    assert.NotEqual(t, "pw1", user.Password)
    userRepo.AssertExpectations(t)
}

func TestAuthService_Register_Failures(t *testing.T) {
    ctx := context.Background()
    tests := []struct {
        name    string
        mocks   func(userRepo *mocks.UserRepository)
        confirm string
        wantErr error
    }{
        {
            name:    "password confirmation mismatch",
            mocks:   func(userRepo *mocks.UserRepository) {},
            confirm: "other",
            wantErr: service.ErrPasswordMismatch,
        },
        {
            name: "username taken",
            mocks: func(userRepo *mocks.UserRepository) {
                userRepo.On("UsernameTaken", ctx, "alice", "").Return(true, nil).Once()
            },
            confirm: "pw1",
            wantErr: service.ErrUsernameTaken,
        },
        {
            name: "email taken",
            mocks: func(userRepo *mocks.UserRepository) {
                userRepo.On("UsernameTaken", ctx, "alice", "").Return(false, nil).Once()
                userRepo.On("EmailTaken", ctx, "a@x.com", "").Return(true, nil).Once()
            },
            confirm: "pw1",
            wantErr: service.ErrEmailTaken,
        },
        {
            name: "unique index race maps to taken",
            mocks: func(userRepo *mocks.UserRepository) {
                userRepo.On("UsernameTaken", ctx, "alice", "").Return(false, nil).Once()
                userRepo.On("EmailTaken", ctx, "a@x.com", "").Return(false, nil).Once()
                userRepo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateEntry).Once()
            },
            confirm: "pw1",
            wantErr: service.ErrUsernameTaken,
        },
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            userRepo := new(mocks.UserRepository)
            tt.mocks(userRepo)
            svc := service.NewAuthService(userRepo)

            user, err := svc.Register(ctx, "alice", "a@x.com", "pw1", tt.confirm)
            assert.Nil(t, user)
            assert.ErrorIs(t, err, tt.wantErr)
            userRepo.AssertExpectations(t)
        })
    }
}

func TestAuthService_Login(t *testing.T) {
    ctx := context.Background()
    hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
    require.NoError(t, err)
    stored := &model.User{ID: "u-1", Username: "alice", Email: "a@x.com", Password: string(hash)}

    t.Run("success", func(t *testing.T) {
        userRepo := new(mocks.UserRepository)
        userRepo.On("GetByEmail", ctx, "a@x.com").Return(stored, nil).Once()
        svc := service.NewAuthService(userRepo)

        user, err := svc.Login(ctx, "a@x.com", "pw1")
        require.NoError(t, err)
        assert.Equal(t, "alice", user.Username)
    })

    // 用户不存在和密码错误必须返回同一个错误
    t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
        userRepo := new(mocks.UserRepository)
        userRepo.On("GetByEmail", ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound).Once()
        userRepo.On("GetByEmail", ctx, "a@x.com").Return(stored, nil).Once()
        svc := service.NewAuthService(userRepo)

        _, errMissing := svc.Login(ctx, "nobody@x.com", "pw1")
        _, errWrongPw := svc.Login(ctx, "a@x.com", "wrong")
        assert.ErrorIs(t, errMissing, service.ErrInvalidCredentials)
        assert.ErrorIs(t, errWrongPw, service.ErrInvalidCredentials)
        assert.Equal(t, errMissing, errWrongPw)
    })
}

func TestAuthService_ResetPassword(t *testing.T) {
    ctx := context.Background()
    userRepo := new(mocks.UserRepository)
    userRepo.On("UpdatePassword", ctx, "u-1", mock.MatchedBy(func(hash string) bool {
        return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpw")) == nil
    })).Return(nil).Once()
    svc := service.NewAuthService(userRepo)

    err := svc.ResetPassword(ctx, &model.User{ID: "u-1"}, "newpw")
    require.NoError(t, err)
    userRepo.AssertExpectations(t)
}
