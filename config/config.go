package config

import (
    "errors"
    "strings"
    "time"

    "github.com/spf13/viper"
)

type Config struct {
    Env         string
    HTTP        HTTP
    ExternalURL string
    SecretKey   string
    Database    Database
    Mail        Mail
    Reset       Reset
    Avatar      Avatar
    Sentry      Sentry
    Tracing     Tracing
    PageSize    int
}

type HTTP struct {
    Addr string
    Port int
}

type Database struct {
    // Driver: sqlite | postgres
    Driver string
    DSN    string
}

type Mail struct {
    Host     string
    Port     int
    UseTLS   bool
    Username string
    Password string
    Sender   string
}

type Reset struct {
    TokenTTL time.Duration
}

type Avatar struct {
    Dir string
}

type Sentry struct {
    DSN string
}

type Tracing struct {
    // OTLPEndpoint 为空则不上报 trace
    OTLPEndpoint string
}

// Load 读取环境变量（HTTP_PORT、DATABASE_DSN、MAIL_HOST ...），缺省走默认值。
// 非 dev 环境必须提供 SECRET_KEY。
func Load() (*Config, error) {
    v := viper.New()
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    v.SetDefault("env", "dev")
    v.SetDefault("http.addr", "0.0.0.0")
    v.SetDefault("http.port", 8080)
    v.SetDefault("external.url", "http://localhost:8080")
    v.SetDefault("secret.key", "")
    v.SetDefault("database.driver", "sqlite")
    v.SetDefault("database.dsn", "site.db")
    v.SetDefault("mail.host", "localhost")
    v.SetDefault("mail.port", 587)
    v.SetDefault("mail.use.tls", true)
    v.SetDefault("mail.username", "")
    v.SetDefault("mail.password", "")
    v.SetDefault("mail.sender", "noreply@demo.com")
    v.SetDefault("reset.token.ttl", 1800)
    v.SetDefault("avatar.dir", "static/profile_pics")
    v.SetDefault("sentry.dsn", "")
    v.SetDefault("otlp.endpoint", "")
    v.SetDefault("page.size", 3)

    cfg := &Config{
        Env: v.GetString("env"),
        HTTP: HTTP{
            Addr: v.GetString("http.addr"),
            Port: v.GetInt("http.port"),
        },
        ExternalURL: strings.TrimRight(v.GetString("external.url"), "/"),
        SecretKey:   v.GetString("secret.key"),
        Database: Database{
            Driver: v.GetString("database.driver"),
            DSN:    v.GetString("database.dsn"),
        },
        Mail: Mail{
            Host:     v.GetString("mail.host"),
            Port:     v.GetInt("mail.port"),
            UseTLS:   v.GetBool("mail.use.tls"),
            Username: v.GetString("mail.username"),
            Password: v.GetString("mail.password"),
            Sender:   v.GetString("mail.sender"),
        },
        Reset: Reset{
            TokenTTL: time.Duration(v.GetInt("reset.token.ttl")) * time.Second,
        },
        Avatar: Avatar{
            Dir: v.GetString("avatar.dir"),
        },
        Sentry: Sentry{
            DSN: v.GetString("sentry.dsn"),
        },
        Tracing: Tracing{
            OTLPEndpoint: v.GetString("otlp.endpoint"),
        },
        PageSize: v.GetInt("page.size"),
    }

    if cfg.SecretKey == "" {
        if cfg.Env != "dev" {
            return nil, errors.New("SECRET_KEY is required outside dev")
        }
        // dev 便利默认，勿用于生产
        cfg.SecretKey = "dev-secret-key"
    }
    if cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "postgres" {
        return nil, errors.New("DATABASE_DRIVER must be sqlite or postgres")
    }
    return cfg, nil
}
