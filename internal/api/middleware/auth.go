package middleware

import (
    "github.com/gin-contrib/sessions"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/gin-blog/internal/model"
    "github.com/d60-Lab/gin-blog/internal/repository"
    "github.com/d60-Lab/gin-blog/pkg/logger"
    "github.com/d60-Lab/gin-blog/pkg/response"
)

// SessionUserKey session 里的用户 id 键
const SessionUserKey = "user_id"

const ctxUserKey = "current_user"

// CurrentUser 把 session 里的 user_id 解析成 User 放进请求上下文。
// session 无效或用户已不存在时当匿名处理，不中断请求。
func CurrentUser(userRepo repository.UserRepository) gin.HandlerFunc {
    return func(c *gin.Context) {
        sess := sessions.Default(c)
        id, ok := sess.Get(SessionUserKey).(string)
        if !ok || id == "" {
            c.Next()
            return
        }
        user, err := userRepo.GetByID(c.Request.Context(), id)
        if err != nil {
            // 陈旧 session：清掉，按匿名继续
            logger.Debug("session user not resolvable", zap.String("user_id", id), zap.Error(err))
            sess.Delete(SessionUserKey)
            _ = sess.Save()
            c.Next()
            return
        }
        c.Set(ctxUserKey, user)
        c.Next()
    }
}

// UserFrom 取出 CurrentUser 解析的用户；匿名时 ok=false。
func UserFrom(c *gin.Context) (*model.User, bool) {
    v, exists := c.Get(ctxUserKey)
    if !exists {
        return nil, false
    }
    user, ok := v.(*model.User)
    return user, ok && user != nil
}

// LoginRequired 未登录直接 401 短路。
func LoginRequired() gin.HandlerFunc {
    return func(c *gin.Context) {
        if _, ok := UserFrom(c); !ok {
            response.Unauthorized(c, "login required")
            c.Abort()
            return
        }
        c.Next()
    }
}

// GuestOnly 注册/登录/重置密码只对未登录用户开放。
func GuestOnly() gin.HandlerFunc {
    return func(c *gin.Context) {
        if _, ok := UserFrom(c); ok {
            response.Forbidden(c, "already authenticated")
            c.Abort()
            return
        }
        c.Next()
    }
}
