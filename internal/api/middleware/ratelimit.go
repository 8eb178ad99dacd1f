package middleware

import (
    "net/http"
    "sync"

    "github.com/gin-gonic/gin"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/gin-blog/pkg/response"
)

// RateLimit 按客户端 IP 限流，挂在登录和请求重置邮件这类可被暴力尝试的路由上。
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
    var (
        mu       sync.Mutex
        limiters = make(map[string]*rate.Limiter)
    )
    return func(c *gin.Context) {
        ip := c.ClientIP()
        mu.Lock()
        lim, ok := limiters[ip]
        if !ok {
            lim = rate.NewLimiter(r, burst)
            limiters[ip] = lim
        }
        mu.Unlock()

        if !lim.Allow() {
            c.JSON(http.StatusTooManyRequests, response.Response{
                Code:    http.StatusTooManyRequests,
                Message: "too many requests",
            })
            c.Abort()
            return
        }
        c.Next()
    }
}
