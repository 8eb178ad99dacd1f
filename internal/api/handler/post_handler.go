package handler

import (
    "errors"
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/gin-blog/internal/api/middleware"
    "github.com/d60-Lab/gin-blog/internal/repository"
    "github.com/d60-Lab/gin-blog/internal/service"
    "github.com/d60-Lab/gin-blog/pkg/response"
)

type postRequest struct {
    Title   string `json:"title" binding:"required,max=100"`
    Content string `json:"content" binding:"required"`
}

// Home 全站文章 feed（按发布时间倒序分页）
// @Summary 首页文章列表
// @Tags posts
// @Param page query int false "页码" default(1)
// @Produce json
// @Success 200 {object} response.Response{data=pageView}
// @Router / [get]
func (h *Handler) Home(c *gin.Context) {
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    res, err := h.posts.List(c.Request.Context(), page, 0, "")
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, toPageView(res))
}

// UserPosts 某用户的文章列表
// @Summary 用户文章列表
// @Tags posts
// @Param username path string true "用户名"
// @Param page query int false "页码" default(1)
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/{username} [get]
func (h *Handler) UserPosts(c *gin.Context) {
    user, err := h.accounts.GetByUsername(c.Request.Context(), c.Param("username"))
    if err != nil {
        if errors.Is(err, repository.ErrUserNotFound) {
            response.NotFound(c, "user not found")
            return
        }
        response.InternalError(c, err)
        return
    }
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    res, err := h.posts.List(c.Request.Context(), page, 0, user.ID)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"user": toUserView(user, false), "page": toPageView(res)})
}

// CreatePost 发布新文章
// @Summary 新文章
// @Tags posts
// @Accept json
// @Produce json
// @Param request body postRequest true "文章内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /post/new [post]
func (h *Handler) CreatePost(c *gin.Context) {
    user, _ := middleware.UserFrom(c)
    var req postRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    post, err := h.posts.Create(c.Request.Context(), user.ID, req.Title, req.Content)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    post.User = *user
    response.Created(c, toPostView(post))
}

// GetPost 查看单篇文章
// @Summary 文章详情
// @Tags posts
// @Param id path string true "文章ID"
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /post/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
    post, err := h.posts.Get(c.Request.Context(), c.Param("id"))
    if err != nil {
        if errors.Is(err, repository.ErrPostNotFound) {
            response.NotFound(c, "post not found")
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, toPostView(post))
}

// UpdatePost 作者修改自己的文章
// @Summary 修改文章
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "文章ID"
// @Param request body postRequest true "文章内容"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /post/{id}/update [post]
func (h *Handler) UpdatePost(c *gin.Context) {
    user, _ := middleware.UserFrom(c)
    var req postRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    post, err := h.posts.Update(c.Request.Context(), c.Param("id"), user.ID, req.Title, req.Content)
    if err != nil {
        switch {
        case errors.Is(err, repository.ErrPostNotFound):
            response.NotFound(c, "post not found")
        case errors.Is(err, service.ErrNotPostAuthor):
            response.Forbidden(c, "only the author can update this post")
        default:
            response.InternalError(c, err)
        }
        return
    }
    response.Success(c, toPostView(post))
}

// DeletePost 作者删除自己的文章
// @Summary 删除文章
// @Tags posts
// @Param id path string true "文章ID"
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /post/{id}/delete [post]
func (h *Handler) DeletePost(c *gin.Context) {
    user, _ := middleware.UserFrom(c)
    err := h.posts.Delete(c.Request.Context(), c.Param("id"), user.ID)
    if err != nil {
        switch {
        case errors.Is(err, repository.ErrPostNotFound):
            response.NotFound(c, "post not found")
        case errors.Is(err, service.ErrNotPostAuthor):
            response.Forbidden(c, "only the author can delete this post")
        default:
            response.InternalError(c, err)
        }
        return
    }
    response.Success(c, nil)
}
