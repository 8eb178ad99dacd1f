package api

import (
    "time"

    sentrygin "github.com/getsentry/sentry-go/gin"
    "github.com/gin-contrib/gzip"
    "github.com/gin-contrib/sessions"
    "github.com/gin-contrib/sessions/cookie"
    "github.com/gin-gonic/gin"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/gin-blog/config"
    _ "github.com/d60-Lab/gin-blog/docs"
    "github.com/d60-Lab/gin-blog/internal/api/handler"
    "github.com/d60-Lab/gin-blog/internal/api/middleware"
    "github.com/d60-Lab/gin-blog/internal/repository"
)

// NewRouter 组装中间件链和全部路由。
func NewRouter(cfg *config.Config, h *handler.Handler, userRepo repository.UserRepository) *gin.Engine {
    if cfg.Env != "dev" {
        gin.SetMode(gin.ReleaseMode)
    }

    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(gzip.Gzip(gzip.DefaultCompression))
    r.Use(otelgin.Middleware("gin-blog"))
    if cfg.Sentry.DSN != "" {
        r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
    }

    r.Use(sessions.Sessions("session", cookie.NewStore([]byte(cfg.SecretKey))))
    r.Use(middleware.CurrentUser(userRepo))

    // 登录与重置邮件接口限流：每 IP 每 12s 一个令牌，桶容量 5
    authLimit := middleware.RateLimit(rate.Every(12*time.Second), 5)

    r.Static("/static/profile_pics", cfg.Avatar.Dir)
    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    r.GET("/", h.Home)
    r.GET("/home", h.Home)
    r.GET("/user/:username", h.UserPosts)

    r.POST("/register", middleware.GuestOnly(), h.Register)
    r.POST("/login", middleware.GuestOnly(), authLimit, h.Login)
    r.GET("/logout", h.Logout)

    r.POST("/reset_password", middleware.GuestOnly(), authLimit, h.RequestReset)
    r.GET("/reset_password/:token", middleware.GuestOnly(), h.CheckResetToken)
    r.POST("/reset_password/:token", middleware.GuestOnly(), h.ResetPassword)

    auth := r.Group("", middleware.LoginRequired())
    {
        auth.GET("/account", h.GetAccount)
        auth.POST("/account", h.UpdateAccount)
        auth.POST("/post/new", h.CreatePost)
        auth.GET("/post/:id", h.GetPost)
        auth.POST("/post/:id/update", h.UpdatePost)
        auth.POST("/post/:id/delete", h.DeletePost)
    }

    return r
}
