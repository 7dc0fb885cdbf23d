package admin

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/store"
)

const (
	messagesLimit = 200
	visitorsLimit = 200
)

// Register mounts the privacy page, login flow and protected dashboard.
func (a *Admin) Register(r gin.IRouter) {
	r.GET("/privacy", func(c *gin.Context) {
		a.html(c, http.StatusOK, "privacy.html", gin.H{"title": "Privacy Policy"})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		a.html(c, http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})
	r.POST("/admin/login", a.login)
	r.GET("/admin/logout", a.logout)

	g := r.Group("/admin")
	g.Use(a.RequireAuth())

	g.GET("/dashboard", a.dashboard)
	g.GET("/api/stats", a.stats)
	g.GET("/messages", a.messages)
	g.DELETE("/messages/:id", a.deleteMessage)
	g.GET("/visitors", a.visitors)
	g.POST("/privacy/delete-visitor-data", a.privacyCleanup)
	g.GET("/export/stats", a.exportStats)
}

func (a *Admin) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !userOK || !passOK {
		a.log.Warn("failed admin login", zap.String("client", a.hashIP(c.ClientIP())))
		a.html(c, http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}

	c.SetCookie(cookieName, a.token, 3600*24, "/admin", "", false, true)
	a.log.Info("admin login", zap.String("client", a.hashIP(c.ClientIP())))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *Admin) logout(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, "/admin", "", false, true)
	a.log.Info("admin logout", zap.String("client", a.hashIP(c.ClientIP())))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (a *Admin) dashboard(c *gin.Context) {
	stats, err := a.repo.Stats(c.Request.Context())
	if err != nil {
		a.log.Error("load admin stats", zap.Error(err))
		a.html(c, http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
		return
	}
	a.html(c, http.StatusOK, "admin-dashboard.html", gin.H{"title": "Dashboard", "stats": stats})
}

func (a *Admin) stats(c *gin.Context) {
	stats, err := a.repo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *Admin) messages(c *gin.Context) {
	msgs, err := a.repo.ListContactMessages(c.Request.Context(), messagesLimit)
	if err != nil {
		a.log.Error("load contact messages", zap.Error(err))
		a.html(c, http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load messages"})
		return
	}
	a.html(c, http.StatusOK, "admin-messages.html", gin.H{"title": "Messages", "messages": msgs})
}

func (a *Admin) deleteMessage(c *gin.Context) {
	id := c.Param("id")
	err := a.repo.DeleteContactMessage(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	case err != nil:
		a.log.Error("delete contact message", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}

	a.log.Info("contact message deleted", zap.String("id", id), zap.String("client", a.hashIP(c.ClientIP())))
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

func (a *Admin) visitors(c *gin.Context) {
	visits, err := a.repo.RecentVisits(c.Request.Context(), visitorsLimit)
	if err != nil {
		a.log.Error("load visitors", zap.Error(err))
		a.html(c, http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load visitors"})
		return
	}
	a.html(c, http.StatusOK, "admin-visitors.html", gin.H{"title": "Visitors", "visitors": visits})
}

func (a *Admin) privacyCleanup(c *gin.Context) {
	removed, err := a.Cleanup(c.Request.Context())
	if err != nil {
		a.log.Error("privacy cleanup", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": removed})
}

func (a *Admin) exportStats(c *gin.Context) {
	stats, err := a.repo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	a.log.Info("admin stats exported", zap.String("client", a.hashIP(c.ClientIP())))
	c.JSON(http.StatusOK, stats)
}
