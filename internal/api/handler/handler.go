package handler

import (
    "time"

    "github.com/d60-Lab/gin-blog/internal/mailer"
    "github.com/d60-Lab/gin-blog/internal/model"
    "github.com/d60-Lab/gin-blog/internal/service"
)

// Handler 持有所有路由依赖，由 main 注入。
type Handler struct {
    auth     service.AuthService
    posts    service.PostService
    accounts service.AccountService
    tokens   service.ResetTokenService
    mail     mailer.Mailer
}

func New(
    auth service.AuthService,
    posts service.PostService,
    accounts service.AccountService,
    tokens service.ResetTokenService,
    mail mailer.Mailer,
) *Handler {
    return &Handler{auth: auth, posts: posts, accounts: accounts, tokens: tokens, mail: mail}
}

type userView struct {
    ID        string `json:"id"`
    Username  string `json:"username"`
    Email     string `json:"email,omitempty"`
    Avatar    string `json:"avatar"`
    AvatarURL string `json:"avatar_url"`
}

type authorView struct {
    Username  string `json:"username"`
    AvatarURL string `json:"avatar_url"`
}

type postView struct {
    ID        string     `json:"id"`
    Title     string     `json:"title"`
    Content   string     `json:"content"`
    CreatedAt time.Time  `json:"created_at"`
    Author    authorView `json:"author"`
}

type pageView struct {
    Posts    []postView `json:"posts"`
    Total    int64      `json:"total"`
    Page     int        `json:"page"`
    PageSize int        `json:"page_size"`
    Pages    int        `json:"pages"`
}

func avatarURL(avatar string) string {
    return "/static/profile_pics/" + avatar
}

// toUserView 带邮箱的视图只给本人看
func toUserView(u *model.User, withEmail bool) userView {
    v := userView{ID: u.ID, Username: u.Username, Avatar: u.Avatar, AvatarURL: avatarURL(u.Avatar)}
    if withEmail {
        v.Email = u.Email
    }
    return v
}

func toPostView(p *model.Post) postView {
    return postView{
        ID:        p.ID,
        Title:     p.Title,
        Content:   p.Content,
        CreatedAt: p.CreatedAt,
        Author: authorView{
            Username:  p.User.Username,
            AvatarURL: avatarURL(p.User.Avatar),
        },
    }
}

func toPageView(page *service.Page) pageView {
    posts := make([]postView, 0, len(page.Posts))
    for _, p := range page.Posts {
        posts = append(posts, toPostView(p))
    }
    return pageView{Posts: posts, Total: page.Total, Page: page.Page, PageSize: page.PageSize, Pages: page.Pages}
}
