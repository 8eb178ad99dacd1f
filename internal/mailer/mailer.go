package mailer

import (
    "fmt"

    "go.uber.org/zap"
    "gopkg.in/gomail.v2"

    "github.com/d60-Lab/gin-blog/config"
    "github.com/d60-Lab/gin-blog/internal/model"
    "github.com/d60-Lab/gin-blog/pkg/logger"
)

// Mailer 发送密码重置邮件。失败不重试，错误交给调用方。
type Mailer interface {
    SendResetEmail(user *model.User, token string) error
}

type smtpMailer struct {
    dialer      *gomail.Dialer
    sender      string
    externalURL string
}

func NewSMTPMailer(cfg *config.Config) Mailer {
    d := gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password)
    // 465 走隐式 TLS；587 由 gomail 自动 STARTTLS
    d.SSL = cfg.Mail.UseTLS && cfg.Mail.Port == 465
    return &smtpMailer{
        dialer:      d,
        sender:      cfg.Mail.Sender,
        externalURL: cfg.ExternalURL,
    }
}

func (m *smtpMailer) SendResetEmail(user *model.User, token string) error {
    link := fmt.Sprintf("%s/reset_password/%s", m.externalURL, token)

    msg := gomail.NewMessage()
    msg.SetHeader("From", m.sender)
    msg.SetHeader("To", user.Email)
    msg.SetHeader("Subject", "Password Reset Request")
    msg.SetBody("text/plain", fmt.Sprintf(
        "To reset your password visit the following link:\n%s\n\nIf you did not make this request please ignore this email.\n",
        link,
    ))

    if err := m.dialer.DialAndSend(msg); err != nil {
        logger.Error("reset email dispatch failed", zap.String("user_id", user.ID), zap.Error(err))
        return fmt.Errorf("send reset email: %w", err)
    }
    logger.Info("reset email sent", zap.String("user_id", user.ID))
    return nil
}
