// Package admin serves the password-protected dashboard and the
// privacy-conscious visitor tracking behind it.
package admin

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/model"
	"github.com/Zachkp/portfolio/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	cookieName = "admin_token"

	defaultUsername = "admin"
	defaultPassword = "admin123"

	trackTimeout = 5 * time.Second
)

// skipPrefixes are never counted as page views.
var skipPrefixes = []string{
	"/static/",
	"/admin/",
	"/api/",
	"/sections/",
	"/app",
	"/contact",
	"/favicon",
	"/privacy",
}

// Repository is the storage the dashboard reads and the tracker writes.
type Repository interface {
	RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error
	RecentVisits(ctx context.Context, limit int) ([]store.Visit, error)
	DeleteVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Stats(ctx context.Context) (*store.Stats, error)
	ListContactMessages(ctx context.Context, limit int) ([]model.ContactRecord, error)
	DeleteContactMessage(ctx context.Context, id string) error
}

type Admin struct {
	repo      Repository
	log       *zap.Logger
	tmpl      *template.Template
	token     string
	salt      string
	username  string
	password  string
	retention time.Duration
	now       func() time.Time

	wg sync.WaitGroup
}

func New(repo Repository, creds config.Admin, privacy config.Privacy, debug bool, log *zap.Logger) (*Admin, error) {
	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	salt, err := randomToken()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("admin").Funcs(template.FuncMap{
		"when": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse admin templates: %w", err)
	}

	a := &Admin{
		repo:      repo,
		log:       log,
		tmpl:      tmpl,
		token:     token,
		salt:      salt,
		username:  creds.Username,
		password:  creds.Password,
		retention: privacy.Retention,
		now:       time.Now,
	}

	// dev defaults, never meant for a public deployment
	if a.username == "" {
		a.username = defaultUsername
		if debug {
			log.Warn("using default admin username, set ADMIN_USERNAME")
		}
	}
	if a.password == "" {
		a.password = defaultPassword
		if debug {
			log.Warn("using default admin password, set ADMIN_PASSWORD")
		}
	}

	log.Info("admin access available", zap.String("path", "/admin/login"))
	if debug {
		log.Debug("admin token", zap.String("token", a.token))
	}
	log.Info("visitor tracking enabled with hashed IP addresses")

	return a, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP is stable per IP for the lifetime of the process.
func (a *Admin) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + a.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (a *Admin) html(c *gin.Context, code int, name string, data any) {
	c.Render(code, render.HTML{Template: a.tmpl, Name: name, Data: data})
}

// RequireAuth redirects to the login page without a valid session cookie.
func (a *Admin) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// TrackVisitors records page views in the background. Asset, fragment,
// API and admin requests are skipped, and so is anyone sending DNT: 1.
func (a *Admin) TrackVisitors() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || skipped(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		hashed := a.hashIP(c.ClientIP())
		ua := c.GetHeader("User-Agent")
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), trackTimeout)
			defer cancel()
			if err := a.repo.RecordVisit(ctx, hashed, ua, path); err != nil {
				a.log.Warn("record visit failed", zap.Error(err))
			}
		}()
		c.Next()
	}
}

func skipped(path string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Wait blocks until every background visit write has finished.
func (a *Admin) Wait() {
	a.wg.Wait()
}

// Cleanup removes page views older than the retention window.
func (a *Admin) Cleanup(ctx context.Context) (int64, error) {
	if a.retention <= 0 {
		return 0, nil
	}
	removed, err := a.repo.DeleteVisitsBefore(ctx, a.now().Add(-a.retention))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		a.log.Info("privacy cleanup", zap.Int64("removed", removed), zap.Duration("retention", a.retention))
	}
	return removed, nil
}

// RunRetention runs Cleanup now and then every interval until ctx is done.
func (a *Admin) RunRetention(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := a.Cleanup(ctx); err != nil && ctx.Err() == nil {
			a.log.Warn("privacy cleanup failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
