// Package api serves the portfolio REST endpoints under /api.
package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/model"
)

// Repository is the storage the API reads from and writes to.
type Repository interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListFeaturedProjects(ctx context.Context) ([]model.Project, error)
	ListCertificates(ctx context.Context) ([]model.Certificate, error)
	ListTalks(ctx context.Context) ([]model.Talk, error)
	SaveContactMessage(ctx context.Context, msg model.ContactMessage) (model.ContactRecord, error)
	Ping(ctx context.Context) error
}

// Notifier is told about every stored contact message.
type Notifier interface {
	Notify(ctx context.Context, msg model.ContactMessage) error
}

// notifyTimeout bounds one background notification.
const notifyTimeout = 30 * time.Second

type Handler struct {
	repo          Repository
	notifier      Notifier
	log           *zap.Logger
	notifyTimeout time.Duration

	wg sync.WaitGroup
}

// New builds the API handler. notifier may be nil.
func New(repo Repository, notifier Notifier, log *zap.Logger) *Handler {
	return &Handler{repo: repo, notifier: notifier, log: log, notifyTimeout: notifyTimeout}
}

// Wait blocks until every background notification has finished.
func (h *Handler) Wait() {
	h.wg.Wait()
}

// Register mounts the endpoints on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/api")
	g.GET("/projects", listHandler(h, "projects", h.repo.ListProjects))
	g.GET("/projects/featured", listHandler(h, "featured projects", h.repo.ListFeaturedProjects))
	g.GET("/certificates", listHandler(h, "certificates", h.repo.ListCertificates))
	g.GET("/talks", listHandler(h, "talks", h.repo.ListTalks))
	g.POST("/contact", h.contact)
	g.GET("/health", h.health)
}

func listHandler[T any](h *Handler, name string, list func(context.Context) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := list(c.Request.Context())
		if err != nil {
			h.log.Error("list failed", zap.String("resource", name), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to load " + name})
			return
		}
		if items == nil {
			items = []T{}
		}
		c.JSON(http.StatusOK, items)
	}
}

func (h *Handler) contact(c *gin.Context) {
	var msg model.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	if err := msg.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	rec, err := h.repo.SaveContactMessage(c.Request.Context(), msg)
	if err != nil {
		h.log.Error("store contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to store message"})
		return
	}
	h.log.Info("contact message stored", zap.String("id", rec.ID))

	h.notify(rec.ID, msg)

	c.JSON(http.StatusOK, gin.H{"message": "Contact message sent successfully!", "status": "success"})
}

// notify mails the owner in the background; the visitor's request never
// waits for the mail server.
func (h *Handler) notify(id string, msg model.ContactMessage) {
	if h.notifier == nil {
		return
	}
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), h.notifyTimeout)
		defer cancel()
		if err := h.notifier.Notify(ctx, msg); err != nil && !errors.Is(err, mail.ErrNotConfigured) {
			h.log.Warn("contact notification failed", zap.String("id", id), zap.Error(err))
		}
	}()
}

func (h *Handler) health(c *gin.Context) {
	if err := h.repo.Ping(c.Request.Context()); err != nil {
		h.log.Error("database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "message": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "Portfolio API is running!"})
}
