package server

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsguard/internal/domain"
	"newsguard/internal/usecase"
)

const defaultPageSize = 10

// Handlers exposes the dashboard API on top of the analysis service.
type Handlers struct {
	service  *usecase.Service
	pageSize int
	logger   *slog.Logger
}

// NewHandlers wires the service and the listing page size.
func NewHandlers(service *usecase.Service, pageSize int, logger *slog.Logger) *Handlers {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Handlers{service: service, pageSize: pageSize, logger: logger}
}

// Analyze scores and stores one submitted article.
func (h *Handlers) Analyze(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		URL      string `json:"url"`
		Source   string `json:"source"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.service.Analyze(c.Request.Context(), usecase.AnalyzeRequest{
		Title:    req.Title,
		Content:  req.Content,
		URL:      req.URL,
		Source:   req.Source,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and content required"})
			return
		}
		h.fail(c, "analyze", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"spam_score":  article.SpamScore,
		"spam_level":  article.SpamLevel,
		"credibility": article.Credibility,
		"details":     article.Details,
	})
}

// Scrape triggers one acquisition run over the configured sites.
func (h *Handlers) Scrape(c *gin.Context) {
	analyzed, err := h.service.Scrape(c.Request.Context())
	if err != nil {
		h.fail(c, "scrape", err)
		return
	}

	summaries := make([]gin.H, 0, len(analyzed))
	for _, article := range analyzed {
		summaries = append(summaries, gin.H{
			"title":       article.Title,
			"source":      article.Source,
			"spam_score":  article.SpamScore,
			"spam_level":  article.SpamLevel,
			"credibility": article.Credibility,
		})
	}

	c.JSON(http.StatusOK, gin.H{"count": len(summaries), "articles": summaries})
}

// Articles returns one newest-first page of stored articles.
func (h *Handlers) Articles(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	articles, pages, err := h.service.List(c.Request.Context(), page, h.pageSize)
	if err != nil {
		h.fail(c, "list", err)
		return
	}

	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    stats.TotalAnalyzed,
		"page":     page,
		"pages":    pages,
	})
}

// Search runs a free-text query over stored titles and bodies.
func (h *Handlers) Search(c *gin.Context) {
	results, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, "search", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// Stats returns the classification snapshot.
func (h *Handlers) Stats(c *gin.Context) {
	snapshot, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, "stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":           snapshot,
		"total_analyzed":  snapshot.TotalAnalyzed,
		"spam_percentage": spamPercentage(snapshot),
	})
}

// Export returns the full article dump for download.
func (h *Handlers) Export(c *gin.Context) {
	articles, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.fail(c, "export", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *Handlers) fail(c *gin.Context, op string, err error) {
	if h.logger != nil {
		h.logger.Error("request failed", "op", op, "error", err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// spamPercentage reports the flagged share (spam plus likely_spam) of
// all analyzed articles, rounded to two decimals.
func spamPercentage(s domain.Stats) float64 {
	total := s.TotalAnalyzed
	if total < 1 {
		total = 1
	}
	pct := float64(s.Spam+s.LikelySpam) / float64(total) * 100
	return math.Round(pct*100) / 100
}
