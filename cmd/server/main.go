package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"task_backend/internal/app/router"
	authadapters "task_backend/internal/feature/auth/adapters"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	authusecase "task_backend/internal/feature/auth/usecase"
	taskadapters "task_backend/internal/feature/tasks/adapters"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	taskusecase "task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/cache"
	"task_backend/internal/platform/config"
	infradb "task_backend/internal/platform/db"
	"task_backend/internal/platform/externalapi/openweather"
	platformhttp "task_backend/internal/platform/http"
	jwtmw "task_backend/internal/platform/jwt"
	infraredis "task_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// プロセス全体の設定（起動後は読み取り専用）
	cfg := config.Load()

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without weather cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 天気プロバイダー（Redisキャッシュでラップ）
	weatherCfg := openweather.LoadConfig()
	weatherRepo := openweather.NewOpenWeather(weatherCfg, platformhttp.NewHTTPClient(weatherCfg.Timeout))
	cachedWeatherRepo := cache.NewCachingWeatherRepository(rdb, 0, weatherRepo, "weather")

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	taskRepo := taskadapters.NewTaskMySQL(db)

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenExpiry)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	taskUC := taskusecase.NewTaskUsecase(taskRepo, cachedWeatherRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	// ルータ生成（CORS・レート制限・認証ミドルウェア込み）
	router := router.NewRouter(authH, taskH, cfg.JWTSecret)

	slog.Info("server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
