package service_test

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/mock"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/gin-blog/internal/model"
    "github.com/d60-Lab/gin-blog/internal/repository"
    "github.com/d60-Lab/gin-blog/internal/repository/mocks"
    "github.com/d60-Lab/gin-blog/internal/service"
)

func TestPostService_Create(t *testing.T) {
    ctx := context.Background()
    postRepo := new(mocks.PostRepository)
    postRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Post) bool {
        assert.Equal(t, "u-1", p.UserID)
        assert.Equal(t, "Hello", p.Title)
        assert.Equal(t, time.UTC, p.CreatedAt.Location())
        return true
    })).Return(nil).Once()
    svc := service.NewPostService(postRepo, 3)

    post, err := svc.Create(ctx, "u-1", "Hello", "first post")
    require.NoError(t, err)
    assert.False(t, post.CreatedAt.IsZero())
    postRepo.AssertExpectations(t)
}

func TestPostService_UpdateDelete_Authorization(t *testing.T) {
    ctx := context.Background()
    owned := func() *model.Post {
        return &model.Post{ID: "p-1", Title: "Hello", Content: "first", UserID: "alice"}
    }

    t.Run("non-author update is forbidden", func(t *testing.T) {
        postRepo := new(mocks.PostRepository)
        postRepo.On("GetByID", ctx, "p-1").Return(owned(), nil).Once()
        svc := service.NewPostService(postRepo, 3)

        _, err := svc.Update(ctx, "p-1", "bob", "Hacked", "x")
        assert.ErrorIs(t, err, service.ErrNotPostAuthor)
        postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
    })

    t.Run("non-author delete is forbidden", func(t *testing.T) {
        postRepo := new(mocks.PostRepository)
        postRepo.On("GetByID", ctx, "p-1").Return(owned(), nil).Once()
        svc := service.NewPostService(postRepo, 3)

        err := svc.Delete(ctx, "p-1", "bob")
        assert.ErrorIs(t, err, service.ErrNotPostAuthor)
        postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
    })

    t.Run("author update succeeds and keeps timestamp", func(t *testing.T) {
        created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
        post := owned()
        post.CreatedAt = created
        postRepo := new(mocks.PostRepository)
        postRepo.On("GetByID", ctx, "p-1").Return(post, nil).Once()
        postRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Post) bool {
            return p.Title == "Hello2" && p.CreatedAt.Equal(created)
        })).Return(nil).Once()
        svc := service.NewPostService(postRepo, 3)

        updated, err := svc.Update(ctx, "p-1", "alice", "Hello2", "second")
        require.NoError(t, err)
        assert.Equal(t, "Hello2", updated.Title)
        assert.Equal(t, created, updated.CreatedAt)
    })

    t.Run("author delete succeeds", func(t *testing.T) {
        postRepo := new(mocks.PostRepository)
        postRepo.On("GetByID", ctx, "p-1").Return(owned(), nil).Once()
        postRepo.On("Delete", ctx, "p-1").Return(nil).Once()
        svc := service.NewPostService(postRepo, 3)

        require.NoError(t, svc.Delete(ctx, "p-1", "alice"))
        postRepo.AssertExpectations(t)
    })

    t.Run("missing post", func(t *testing.T) {
        postRepo := new(mocks.PostRepository)
        postRepo.On("GetByID", ctx, "gone").Return(nil, repository.ErrPostNotFound).Twice()
        svc := service.NewPostService(postRepo, 3)

        _, err := svc.Update(ctx, "gone", "alice", "t", "c")
        assert.ErrorIs(t, err, repository.ErrPostNotFound)
        assert.ErrorIs(t, svc.Delete(ctx, "gone", "alice"), repository.ErrPostNotFound)
    })
}

func TestPostService_List(t *testing.T) {
    ctx := context.Background()

    t.Run("defaults and page math", func(t *testing.T) {
        postRepo := new(mocks.PostRepository)
        postRepo.On("Count", ctx, "").Return(int64(7), nil).Once()
        postRepo.On("List", ctx, "", 0, 3).Return([]*model.Post{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil).Once()
        svc := service.NewPostService(postRepo, 3)

        page, err := svc.List(ctx, 0, 0, "")
        require.NoError(t, err)
        assert.Equal(t, 1, page.Page)
        assert.Equal(t, 3, page.PageSize)
        assert.Equal(t, int64(7), page.Total)
        assert.Equal(t, 3, page.Pages)
    })

    t.Run("page beyond the end is empty, not an error", func(t *testing.T) {
        postRepo := new(mocks.PostRepository)
        postRepo.On("Count", ctx, "").Return(int64(4), nil).Once()
        postRepo.On("List", ctx, "", 27, 3).Return([]*model.Post{}, nil).Once()
        svc := service.NewPostService(postRepo, 3)

        page, err := svc.List(ctx, 10, 3, "")
        require.NoError(t, err)
        assert.Empty(t, page.Posts)
        assert.NotNil(t, page.Posts)
    })

    t.Run("author filter is passed through", func(t *testing.T) {
        postRepo := new(mocks.PostRepository)
        postRepo.On("Count", ctx, "u-1").Return(int64(1), nil).Once()
        postRepo.On("List", ctx, "u-1", 0, 3).Return([]*model.Post{{ID: "a", UserID: "u-1"}}, nil).Once()
        svc := service.NewPostService(postRepo, 3)

        page, err := svc.List(ctx, 1, 3, "u-1")
        require.NoError(t, err)
        require.Len(t, page.Posts, 1)
        assert.Equal(t, "u-1", page.Posts[0].UserID)
    })
}
