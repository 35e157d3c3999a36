package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	blogRepo "geolumiere/database/repository/blog"
	"geolumiere/models"
)

// BlogHandler serves public articles and the admin blog CRUD.
type BlogHandler struct {
	Repo blogRepo.BlogRepository
}

func NewBlogHandler(repo blogRepo.BlogRepository) *BlogHandler {
	return &BlogHandler{Repo: repo}
}

// ListPublished handles GET /api/blog (public).
func (h *BlogHandler) ListPublished(c *gin.Context) {
	posts, err := h.Repo.List(c.Request.Context(), true)
	if err != nil {
		getLogger(c).Error("failed to list blog posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetBySlug handles GET /api/blog/:slug (public). Draft posts are hidden.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.Repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil || post.Status != models.BlogPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// ListAll handles GET /api/blog/all (admin, drafts included).
func (h *BlogHandler) ListAll(c *gin.Context) {
	posts, err := h.Repo.List(c.Request.Context(), false)
	if err != nil {
		getLogger(c).Error("failed to list blog posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Create handles POST /api/blog (admin).
func (h *BlogHandler) Create(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	if err := validateBlogPost(&post); err != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &post); err != nil {
		if errors.Is(err, blogRepo.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, gin.H{"error": "Ce slug est déjà utilisé"})
			return
		}
		getLogger(c).Error("failed to create blog post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// Update handles PUT /api/blog/:id (admin).
func (h *BlogHandler) Update(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	post.ID = c.Param("id")
	if err := validateBlogPost(&post); err != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	// Preserve the original publication timestamp across edits.
	if existing, err := h.Repo.GetByID(c.Request.Context(), post.ID); err == nil {
		post.PublishedAt = existing.PublishedAt
		post.CreatedAt = existing.CreatedAt
	}

	if err := h.Repo.Update(c.Request.Context(), &post); err != nil {
		switch {
		case errors.Is(err, blogRepo.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, gin.H{"error": "Ce slug est déjà utilisé"})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
		default:
			getLogger(c).Error("failed to update blog post", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Delete handles DELETE /api/blog/:id (admin).
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
			return
		}
		getLogger(c).Error("failed to delete blog post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article supprimé"})
}

func validateBlogPost(post *models.BlogPost) string {
	if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Slug) == "" {
		return "Titre et slug requis"
	}
	if strings.TrimSpace(post.Excerpt) == "" || strings.TrimSpace(post.Content) == "" {
		return "Extrait et contenu requis"
	}
	if post.Status == "" {
		post.Status = models.BlogDraft
	}
	if post.Status != models.BlogDraft && post.Status != models.BlogPublished {
		return "Statut invalide"
	}
	if post.ReadTime == "" {
		post.ReadTime = "5 min"
	}
	return ""
}
