package handler

import (
    "errors"

    "github.com/gin-contrib/sessions"
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/gin-blog/internal/api/middleware"
    "github.com/d60-Lab/gin-blog/internal/service"
    "github.com/d60-Lab/gin-blog/pkg/response"
)

// rememberMaxAge "记住我" cookie 的寿命
const rememberMaxAge = 30 * 24 * 60 * 60

type registerRequest struct {
    Username        string `json:"username" binding:"required,min=2,max=20"`
    Email           string `json:"email" binding:"required,email,max=120"`
    Password        string `json:"password" binding:"required"`
    ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// Register 注册新用户
// @Summary 注册
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
    var req registerRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
    if err != nil {
        switch {
        case errors.Is(err, service.ErrUsernameTaken),
            errors.Is(err, service.ErrEmailTaken),
            errors.Is(err, service.ErrPasswordMismatch):
            response.BadRequest(c, err.Error())
        default:
            response.InternalError(c, err)
        }
        return
    }
    response.Created(c, toUserView(user, true))
}

type loginRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required"`
    Remember bool   `json:"remember"`
}

// Login 登录并建立会话
// @Summary 登录
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
    if err != nil {
        if errors.Is(err, service.ErrInvalidCredentials) {
            response.Unauthorized(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }

    sess := sessions.Default(c)
    opts := sessions.Options{Path: "/", HttpOnly: true}
    if req.Remember {
        opts.MaxAge = rememberMaxAge
    }
    sess.Options(opts)
    sess.Set(middleware.SessionUserKey, user.ID)
    if err := sess.Save(); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, toUserView(user, true))
}

// Logout 清除会话
// @Summary 登出
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /logout [get]
func (h *Handler) Logout(c *gin.Context) {
    sess := sessions.Default(c)
    sess.Clear()
    sess.Options(sessions.Options{Path: "/", MaxAge: -1})
    _ = sess.Save()
    response.Success(c, nil)
}
