package dto

// LoginReq は/api/auth/loginエンドポイントのリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenRes は認証成功時に発行されるベアラートークンのレスポンスです。
type TokenRes struct {
	Token string `json:"token"`
}
