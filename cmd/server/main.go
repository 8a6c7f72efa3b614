package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/config"
	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/handler"
	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/inference"
	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/mlmodel"
	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/repository"
	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/server"
	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/textproc"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting Sentiment Analysis API...")

	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	if cfg.Database.Type == "sqlite" {
		os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755)
	}
	db, err := repository.NewDB(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, cfg.Database.Type, logger)

	// Load model artifacts. A broken artifact pair means predictions would be
	// garbage, so refuse to start instead.
	vectorizer, err := mlmodel.LoadVectorizer(cfg.Model.VectorizerPath)
	if err != nil {
		logger.Fatal("Failed to load vectorizer", zap.Error(err))
	}
	classifier, err := mlmodel.LoadClassifier(cfg.Model.ClassifierPath)
	if err != nil {
		logger.Fatal("Failed to load classifier", zap.Error(err))
	}
	if vectorizer.NumFeatures() != classifier.NumFeatures() {
		logger.Fatal("Model artifacts disagree on feature dimension",
			zap.Int("vectorizer_features", vectorizer.NumFeatures()),
			zap.Int("classifier_features", classifier.NumFeatures()))
	}
	logger.Info("Models loaded successfully",
		zap.Int("features", vectorizer.NumFeatures()))

	engine := inference.NewEngine(textproc.NewNormalizer(), vectorizer, classifier)

	// Wire repository, handler and server
	tweetRepo := repository.NewTweetRepository(db, logger)
	tweetHandler := handler.NewTweetHandler(tweetRepo, engine, logger)

	srv := server.NewServer(tweetHandler, logger)
	srv.Run(cfg.Server.Port)
}
