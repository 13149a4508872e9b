// Package adapters はtasksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// taskMySQL はTaskRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type taskMySQL struct {
	db *gorm.DB
}

// taskMySQLがTaskRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TaskRepository = (*taskMySQL)(nil)

// NewTaskMySQL は指定されたgorm.DB接続でtaskMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewTaskMySQL(db *gorm.DB) *taskMySQL {
	return &taskMySQL{db: db}
}

// Create はタスクをデータベースに追加します。
func (r *taskMySQL) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByUser は指定されたユーザーが所有するすべてのタスクを作成順に返します。
func (r *taskMySQL) FindByUser(ctx context.Context, userID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindOwned は指定されたユーザーが所有するタスクをIDで取得します。
// タスクが存在しない、または所有者が一致しない場合、usecase.ErrTaskNotFoundを返します。
// 所有者不一致と不存在は意図的に区別しません。
func (r *taskMySQL) FindOwned(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
	var t entity.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update は既存タスクの全フィールドを保存します。
func (r *taskMySQL) Update(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// DeleteOwned は指定されたユーザーが所有するタスクを1つのクエリで検索・削除します。
// 一致する行がない場合、usecase.ErrTaskNotFoundを返します。
func (r *taskMySQL) DeleteOwned(ctx context.Context, userID, taskID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&entity.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}
