package dto

import "task_backend/internal/feature/tasks/domain/entity"

// TaskRes はタスク1件のAPIレスポンスを表します。
type TaskRes struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	City        string `json:"city"`
	Weather     string `json:"weather"`
}

// NewTaskRes はドメインエンティティをレスポンスDTOに変換します。
func NewTaskRes(t *entity.Task) TaskRes {
	return TaskRes{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		City:        t.City,
		Weather:     t.Weather,
	}
}
