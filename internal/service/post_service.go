package service

import (
    "context"
    "errors"
    "time"

    "github.com/d60-Lab/gin-blog/internal/model"
    "github.com/d60-Lab/gin-blog/internal/repository"
)

// ErrNotPostAuthor 非作者改/删文章
var ErrNotPostAuthor = errors.New("requester is not the post author")

// Page 一页文章及分页元信息
type Page struct {
    Posts    []*model.Post `json:"posts"`
    Total    int64         `json:"total"`
    Page     int           `json:"page"`
    PageSize int           `json:"page_size"`
    Pages    int           `json:"pages"`
}

type PostService interface {
    Create(ctx context.Context, authorID, title, content string) (*model.Post, error)
    Get(ctx context.Context, id string) (*model.Post, error)
    // List authorID 为空表示全站 feed；超出末页返回空页
    List(ctx context.Context, page, pageSize int, authorID string) (*Page, error)
    Update(ctx context.Context, id, requesterID, title, content string) (*model.Post, error)
    Delete(ctx context.Context, id, requesterID string) error
}

type postService struct {
    postRepo        repository.PostRepository
    defaultPageSize int
}

func NewPostService(postRepo repository.PostRepository, defaultPageSize int) PostService {
    if defaultPageSize < 1 {
        defaultPageSize = 3
    }
    return &postService{postRepo: postRepo, defaultPageSize: defaultPageSize}
}

func (s *postService) Create(ctx context.Context, authorID, title, content string) (*model.Post, error) {
    post := &model.Post{
        Title:     title,
        Content:   content,
        UserID:    authorID,
        CreatedAt: time.Now().UTC(),
    }
    if err := s.postRepo.Create(ctx, post); err != nil {
        return nil, err
    }
    return post, nil
}

func (s *postService) Get(ctx context.Context, id string) (*model.Post, error) {
    return s.postRepo.GetByID(ctx, id)
}

func (s *postService) List(ctx context.Context, page, pageSize int, authorID string) (*Page, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = s.defaultPageSize
    }
    total, err := s.postRepo.Count(ctx, authorID)
    if err != nil {
        return nil, err
    }
    offset := (page - 1) * pageSize
    posts, err := s.postRepo.List(ctx, authorID, offset, pageSize)
    if err != nil {
        return nil, err
    }
    if posts == nil {
        posts = []*model.Post{}
    }
    pages := int((total + int64(pageSize) - 1) / int64(pageSize))
    return &Page{Posts: posts, Total: total, Page: page, PageSize: pageSize, Pages: pages}, nil
}

func (s *postService) Update(ctx context.Context, id, requesterID, title, content string) (*model.Post, error) {
    post, err := s.postRepo.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    if post.UserID != requesterID {
        return nil, ErrNotPostAuthor
    }
    post.Title = title
    post.Content = content
    if err := s.postRepo.Update(ctx, post); err != nil {
        return nil, err
    }
    return post, nil
}

func (s *postService) Delete(ctx context.Context, id, requesterID string) error {
    post, err := s.postRepo.GetByID(ctx, id)
    if err != nil {
        return err
    }
    if post.UserID != requesterID {
        return ErrNotPostAuthor
    }
    return s.postRepo.Delete(ctx, post.ID)
}
