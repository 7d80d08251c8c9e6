package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindmate/mindmate/config"
	"mindmate/mindmate/controllers"
	"mindmate/mindmate/routes"
	"mindmate/mindmate/services/llm"
	"mindmate/mindmate/services/sentiment"
	"mindmate/mindmate/services/severity"
	"mindmate/mindmate/services/suggest"
	"mindmate/mindmate/session"
	"mindmate/mindmate/sources/sqlite"
	"mindmate/mindmate/sources/sqlite/dao"
	"mindmate/mindmate/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := sqlite.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database open error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	userDAO := dao.NewUserDAO(db.DB)
	moodDAO := dao.NewMoodDAO(db.DB)
	screeningDAO := dao.NewScreeningDAO(db.DB)
	chatDAO := dao.NewChatDAO(db.DB)

	sessions := session.NewStore()
	gemini := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, time.Duration(cfg.LLMTimeoutSecs)*time.Second)
	classifier := sentiment.NewClassifier()
	severitySvc := severity.NewService(cfg.SeverityModelPath)
	suggester := suggest.NewService(gemini)

	authCtrl := controllers.NewAuthController(userDAO, sessions, cfg)
	moodCtrl := controllers.NewMoodController(moodDAO, classifier, suggester, sessions)
	chatCtrl := controllers.NewChatController(chatDAO, gemini, sessions)
	screeningCtrl := controllers.NewScreeningController(screeningDAO, severitySvc)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/auth", routes.AuthRoutes(authCtrl, cfg, sessions))
	r.Mount("/mood", routes.MoodRoutes(moodCtrl, cfg, sessions))
	r.Mount("/chat", routes.ChatRoutes(chatCtrl, cfg, sessions))
	r.Mount("/screening", routes.ScreeningRoutes(screeningCtrl, cfg, sessions))
	r.Mount("/history", routes.HistoryRoutes(moodCtrl, chatCtrl, screeningCtrl, cfg, sessions))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("mindmate listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
