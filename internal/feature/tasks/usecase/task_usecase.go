// Package usecase はtasksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"

	"task_backend/internal/feature/tasks/domain/entity"
)

const (
	// WeatherUnavailable は天気情報が取得できなかった場合に設定される固定の代替文字列です。
	// タスクの作成・更新は天気プロバイダーの障害だけでは失敗しません。
	WeatherUnavailable = "Weather data unavailable"
)

// TaskRepository はタスクエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TaskRepository interface {
	// Create は新しいタスクをストレージに永続化します。
	Create(ctx context.Context, task *entity.Task) error

	// FindByUser は指定されたユーザーが所有するすべてのタスクを返します。
	FindByUser(ctx context.Context, userID uint) ([]entity.Task, error)

	// FindOwned は指定されたユーザーが所有するタスクをIDで取得します。
	// タスクが存在しない、または別のユーザーが所有している場合、ErrTaskNotFoundを返します。
	FindOwned(ctx context.Context, userID, taskID uint) (*entity.Task, error)

	// Update は既存タスクの変更を永続化します。
	Update(ctx context.Context, task *entity.Task) error

	// DeleteOwned は指定されたユーザーが所有するタスクを検索し、同時に削除します。
	// 一致するタスクがない場合、ErrTaskNotFoundを返します。
	DeleteOwned(ctx context.Context, userID, taskID uint) error
}

// WeatherRepository は外部天気プロバイダーへの問い合わせを抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type WeatherRepository interface {
	// CurrentDescription は指定された都市の現在の天気の短い説明文を返します。
	CurrentDescription(ctx context.Context, city string) (string, error)
}

// UpdateTaskInput はタスク部分更新の入力値を表します。
// 空文字列のフィールドは「未指定」として扱われ、既存の値を保持します。
type UpdateTaskInput struct {
	Title       string
	Description string
	City        string
}

// taskUsecase はタスク操作のビジネスロジックを実装します。
type taskUsecase struct {
	tasks   TaskRepository
	weather WeatherRepository
}

// NewTaskUsecase はtaskUsecaseの新しいインスタンスを生成します。
func NewTaskUsecase(tasks TaskRepository, weather WeatherRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks, weather: weather}
}

// lookupWeather は都市の天気説明文を取得します。
// プロバイダーの障害時は代替文字列を返し、エラーは呼び出し元に伝播しません。
// 作成・更新で同一のポリシー（常に代替文字列）を適用します。
func (u *taskUsecase) lookupWeather(ctx context.Context, city string) string {
	desc, err := u.weather.CurrentDescription(ctx, city)
	if err != nil {
		slog.Warn("weather lookup failed", "city", city, "error", err)
		return WeatherUnavailable
	}
	return desc
}

// Create は新しいタスクを作成して返します。
// 天気の取得に失敗しても作成自体は成功します。
func (u *taskUsecase) Create(ctx context.Context, userID uint, title, description, city string) (*entity.Task, error) {
	task := &entity.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      entity.StatusPending,
		City:        city,
		Weather:     u.lookupWeather(ctx, city),
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List は呼び出し元ユーザーが所有するすべてのタスクを返します。
func (u *taskUsecase) List(ctx context.Context, userID uint) ([]entity.Task, error) {
	return u.tasks.FindByUser(ctx, userID)
}

// Get は呼び出し元ユーザーが所有するタスクをIDで取得します。
func (u *taskUsecase) Get(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
	return u.tasks.FindOwned(ctx, userID, taskID)
}

// Update はタスクを部分更新して返します。
// 指定されたフィールドのみ置き換え、空文字列は既存値を保持します。
// 都市が指定された場合は天気を再取得します。
func (u *taskUsecase) Update(ctx context.Context, userID, taskID uint, in UpdateTaskInput) (*entity.Task, error) {
	task, err := u.tasks.FindOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if in.City != "" {
		task.City = in.City
		task.Weather = u.lookupWeather(ctx, in.City)
	}
	if in.Title != "" {
		task.Title = in.Title
	}
	if in.Description != "" {
		task.Description = in.Description
	}

	if err := u.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete は呼び出し元ユーザーが所有するタスクを削除します。
func (u *taskUsecase) Delete(ctx context.Context, userID, taskID uint) error {
	return u.tasks.DeleteOwned(ctx, userID, taskID)
}
