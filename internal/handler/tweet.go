package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/models"
	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/repository"
)

const (
	maxTweetLength = 280
	defaultLimit   = 50
	maxLimit       = 100
)

// SentimentEngine is what the handler needs from the inference layer
type SentimentEngine interface {
	Ready() bool
	Predict(text string) (string, float64, error)
}

type TweetHandler interface {
	HealthCheck(c *gin.Context)
	AnalyzeTweet(c *gin.Context)
	GetTweets(c *gin.Context)
	GetStats(c *gin.Context)
	DeleteTweet(c *gin.Context)
}

type tweetHandler struct {
	repo   repository.TweetRepository
	engine SentimentEngine
	logger *zap.Logger
}

func NewTweetHandler(repo repository.TweetRepository, engine SentimentEngine, logger *zap.Logger) TweetHandler {
	return &tweetHandler{
		repo:   repo,
		engine: engine,
		logger: logger,
	}
}

// HealthCheck handles GET /api/health
func (h *tweetHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"message":       "Sentiment Analysis API is running",
		"models_loaded": h.engine.Ready(),
	})
}

// AnalyzeTweet handles POST /api/analyze
func (h *tweetHandler) AnalyzeTweet(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tweet text is required"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tweet text cannot be empty"})
		return
	}
	if utf8.RuneCountInString(text) > maxTweetLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tweet text too long (max 280 characters)"})
		return
	}

	sentiment, confidence, err := h.engine.Predict(text)
	if err != nil {
		h.logger.Error("Failed to analyze sentiment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze sentiment"})
		return
	}

	tweet := &models.Tweet{
		Text:       text,
		Sentiment:  sentiment,
		Confidence: confidence,
	}
	if err := h.repo.Save(tweet); err != nil {
		h.logger.Error("Failed to save tweet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tweet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         tweet.ID,
		"text":       tweet.Text,
		"sentiment":  tweet.Sentiment,
		"confidence": round2(tweet.Confidence),
		"message":    "Sentiment analyzed successfully",
	})
}

// GetTweets handles GET /api/tweets
// Query parameters:
// - limit: max number of tweets to return, default 50, clamped to [1, 100]
func (h *tweetHandler) GetTweets(c *gin.Context) {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	tweets, err := h.repo.List(limit)
	if err != nil {
		h.logger.Error("Failed to list tweets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tweets"})
		return
	}
	if tweets == nil {
		tweets = []models.Tweet{}
	}

	c.JSON(http.StatusOK, gin.H{
		"tweets": tweets,
		"count":  len(tweets),
	})
}

// GetStats handles GET /api/stats
func (h *tweetHandler) GetStats(c *gin.Context) {
	total, err := h.repo.Count()
	if err != nil {
		h.logger.Error("Failed to count tweets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	distribution, err := h.repo.SentimentStats()
	if err != nil {
		h.logger.Error("Failed to aggregate sentiment stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_tweets":           total,
		"sentiment_distribution": distribution,
	})
}

// DeleteTweet handles DELETE /api/delete/:id
func (h *tweetHandler) DeleteTweet(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		// A non-integer id cannot name a stored record
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	deleted, err := h.repo.DeleteByID(id)
	if err != nil {
		h.logger.Error("Failed to delete tweet", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tweet"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tweet deleted successfully"})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
