package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/gin-blog/internal/repository"
    "github.com/d60-Lab/gin-blog/pkg/response"
)

type resetRequestBody struct {
    Email string `json:"email" binding:"required,email"`
}

// RequestReset 给邮箱发送带令牌的重置链接
// @Summary 请求重置密码
// @Tags auth
// @Accept json
// @Produce json
// @Param request body resetRequestBody true "注册邮箱"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /reset_password [post]
func (h *Handler) RequestReset(c *gin.Context) {
    var req resetRequestBody
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    user, err := h.accounts.GetByEmail(c.Request.Context(), req.Email)
    if err != nil {
        if errors.Is(err, repository.ErrUserNotFound) {
            response.BadRequest(c, "there is no account with that email")
            return
        }
        response.InternalError(c, err)
        return
    }
    token, err := h.tokens.Issue(user)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    if err := h.mail.SendResetEmail(user, token); err != nil {
        // 投递失败不是请求方的错，提示稍后再试
        response.ServiceUnavailable(c, "could not send reset email, try again later")
        return
    }
    response.Success(c, gin.H{"message": "an email has been sent with instructions to reset your password"})
}

type resetPasswordBody struct {
    Password        string `json:"password" binding:"required"`
    ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// CheckResetToken 校验令牌是否仍然有效（客户端据此决定是否展示表单）
// @Summary 校验重置令牌
// @Tags auth
// @Param token path string true "重置令牌"
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reset_password/{token} [get]
func (h *Handler) CheckResetToken(c *gin.Context) {
    if user := h.tokens.Verify(c.Request.Context(), c.Param("token")); user == nil {
        response.BadRequest(c, "that is an invalid or expired token")
        return
    }
    response.Success(c, nil)
}

// ResetPassword 用有效令牌设置新密码
// @Summary 重置密码
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "重置令牌"
// @Param request body resetPasswordBody true "新密码"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reset_password/{token} [post]
func (h *Handler) ResetPassword(c *gin.Context) {
    user := h.tokens.Verify(c.Request.Context(), c.Param("token"))
    if user == nil {
        response.BadRequest(c, "that is an invalid or expired token")
        return
    }
    var req resetPasswordBody
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if err := h.auth.ResetPassword(c.Request.Context(), user, req.Password); err != nil {
        if errors.Is(err, repository.ErrUserNotFound) {
            response.BadRequest(c, "that is an invalid or expired token")
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, nil)
}
