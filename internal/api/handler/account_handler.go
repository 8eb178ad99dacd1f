package handler

import (
    "errors"
    "io"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/gin-blog/internal/api/middleware"
    "github.com/d60-Lab/gin-blog/internal/service"
    "github.com/d60-Lab/gin-blog/pkg/response"
)

type updateAccountForm struct {
    Username string `form:"username" binding:"required,min=2,max=20"`
    Email    string `form:"email" binding:"required,email,max=120"`
}

// GetAccount 当前用户的资料
// @Summary 查看账户
// @Tags account
// @Produce json
// @Success 200 {object} response.Response{data=userView}
// @Failure 401 {object} response.Response
// @Router /account [get]
func (h *Handler) GetAccount(c *gin.Context) {
    user, _ := middleware.UserFrom(c)
    response.Success(c, toUserView(user, true))
}

// UpdateAccount 改用户名/邮箱，可选携带 picture 文件换头像
// @Summary 更新账户
// @Tags account
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "用户名"
// @Param email formData string true "邮箱"
// @Param picture formData file false "头像图片"
// @Success 200 {object} response.Response{data=userView}
// @Failure 400 {object} response.Response
// @Router /account [post]
func (h *Handler) UpdateAccount(c *gin.Context) {
    user, _ := middleware.UserFrom(c)
    var form updateAccountForm
    if err := c.ShouldBind(&form); err != nil {
        response.BadRequest(c, err.Error())
        return
    }

    var avatar io.Reader
    var avatarName string
    if fh, err := c.FormFile("picture"); err == nil && fh != nil {
        f, err := fh.Open()
        if err != nil {
            response.BadRequest(c, "cannot read uploaded picture")
            return
        }
        defer f.Close()
        avatar = f
        avatarName = fh.Filename
    }

    updated, err := h.accounts.UpdateAccount(c.Request.Context(), user, form.Username, form.Email, avatar, avatarName)
    if err != nil {
        switch {
        case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
            response.BadRequest(c, err.Error())
        default:
            response.InternalError(c, err)
        }
        return
    }
    response.Success(c, toUserView(updated, true))
}
