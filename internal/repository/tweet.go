package repository

import (
	"fmt"
	"math"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/models"
)

// TweetRepository is the single source of truth for analyzed tweets
type TweetRepository interface {
	Save(tweet *models.Tweet) error
	List(limit int) ([]models.Tweet, error)
	DeleteByID(id int64) (bool, error)
	Count() (int64, error)
	SentimentStats() (map[string]models.SentimentStat, error)
}

type tweetRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewTweetRepository creates a repository over the given database
func NewTweetRepository(db *sqlx.DB, logger *zap.Logger) TweetRepository {
	return &tweetRepository{db: db, logger: logger}
}

// Save inserts a new tweet. The store assigns id and timestamp, which are
// written back into the passed record.
func (r *tweetRepository) Save(tweet *models.Tweet) error {
	query := r.db.Rebind(`INSERT INTO tweets (text, sentiment, confidence) VALUES (?, ?, ?) RETURNING id, timestamp`)
	if err := r.db.QueryRowx(query, tweet.Text, tweet.Sentiment, tweet.Confidence).StructScan(tweet); err != nil {
		return fmt.Errorf("failed to save tweet: %w", err)
	}
	return nil
}

// List returns up to limit tweets, most recent first. The caller is expected
// to have clamped limit already.
func (r *tweetRepository) List(limit int) ([]models.Tweet, error) {
	var tweets []models.Tweet
	query := r.db.Rebind(`SELECT id, text, sentiment, confidence, timestamp FROM tweets ORDER BY timestamp DESC, id DESC LIMIT ?`)
	if err := r.db.Select(&tweets, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}

	for i := range tweets {
		tweets[i].Confidence = round2(tweets[i].Confidence)
	}
	return tweets, nil
}

// DeleteByID removes the tweet with the given id and reports whether a row
// was actually deleted. Deleting a nonexistent id is not an error.
func (r *tweetRepository) DeleteByID(id int64) (bool, error) {
	result, err := r.db.Exec(r.db.Rebind(`DELETE FROM tweets WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete tweet %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete tweet %d: %w", id, err)
	}
	return affected > 0, nil
}

// Count returns the total number of stored tweets
func (r *tweetRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM tweets`); err != nil {
		return 0, fmt.Errorf("failed to count tweets: %w", err)
	}
	return total, nil
}

// SentimentStats returns per-sentiment count and mean confidence. Sentiments
// with no rows are absent from the map.
func (r *tweetRepository) SentimentStats() (map[string]models.SentimentStat, error) {
	rows, err := r.db.Queryx(`SELECT sentiment, COUNT(*) AS count, AVG(confidence) AS avg_confidence FROM tweets GROUP BY sentiment`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentiment stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]models.SentimentStat)
	for rows.Next() {
		var sentiment string
		var count int64
		var avgConfidence float64
		if err := rows.Scan(&sentiment, &count, &avgConfidence); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment stats: %w", err)
		}
		stats[sentiment] = models.SentimentStat{
			Count:         count,
			AvgConfidence: round2(avgConfidence),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sentiment stats: %w", err)
	}

	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
