// Package router assembles the Gin route table for the API.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "task_backend/internal/feature/auth/transport/handler"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	"task_backend/internal/platform/http/handler"
	jwtmw "task_backend/internal/platform/jwt"
	"task_backend/internal/shared/ratelimiter"
)

// NewRouter はすべてのエンドポイントを登録したGinエンジンを生成します。
// jwtSecretは認証ミドルウェアに注入され、起動後は読み取り専用です。
func NewRouter(authHandler *authhandler.AuthHandler, tasks *taskhandler.TaskHandler, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// CORS追加
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 認証エンドポイントにはIP単位のレート制限を適用
	// （総当たり・ユーザー列挙対策）
	auth := r.Group("/api/auth")
	auth.Use(ratelimiter.Middleware(5, 10))
	{
		// 新規ユーザー登録
		auth.POST("/signup", authHandler.Signup)
		// ログイン（ベアラートークン発行）
		auth.POST("/login", authHandler.Login)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにベアラートークンが必要になる
	api := r.Group("/api/tasks")
	api.Use(jwtmw.AuthRequired(jwtSecret))
	{
		api.POST("", tasks.Create)
		api.GET("", tasks.List)
		api.GET("/:id", tasks.Get)
		api.PUT("/:id", tasks.Update)
		api.DELETE("/:id", tasks.Delete)
	}

	return r
}
