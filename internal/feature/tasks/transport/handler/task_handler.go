// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/transport/http/dto"
	"task_backend/internal/feature/tasks/usecase"
	jwtmw "task_backend/internal/platform/jwt"
)

// TaskUsecase はタスク操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type TaskUsecase interface {
	Create(ctx context.Context, userID uint, title, description, city string) (*entity.Task, error)
	List(ctx context.Context, userID uint) ([]entity.Task, error)
	Get(ctx context.Context, userID, taskID uint) (*entity.Task, error)
	Update(ctx context.Context, userID, taskID uint, in usecase.UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, userID, taskID uint) error
}

// TaskHandler はタスクのHTTPリクエストを処理します。
type TaskHandler struct {
	uc TaskUsecase
}

// NewTaskHandler は指定されたusecaseでTaskHandlerの新しいインスタンスを生成します。
func NewTaskHandler(uc TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// currentUserID は認証ミドルウェアがコンテキストに設定したユーザーIDを取得します。
func currentUserID(c *gin.Context) (uint, bool) {
	id := c.GetUint(jwtmw.ContextUserID)
	return id, id != 0
}

// taskIDParam は:idパスパラメータをタスクIDとしてパースします。
func taskIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err == nil
}

// Create はタスク作成APIエンドポイントを処理します。
// title・description・cityはすべて必須です。所有者は認証済みユーザーに
// 固定され、リクエストボディの値は使用されません。
// 天気プロバイダーが利用できない場合でも作成は成功します。
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required (title, description, city)."})
		return
	}

	task, err := h.uc.Create(c.Request.Context(), userID, req.Title, req.Description, req.City)
	if err != nil {
		slog.Error("failed to create task", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task. Please try again later."})
		return
	}

	c.JSON(http.StatusCreated, dto.NewTaskRes(task))
}

// List は認証済みユーザーが所有するすべてのタスクを返します。
// タスクがない場合は空配列を返します。
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tasks, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list tasks", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks. Please try again later."})
		return
	}

	out := make([]dto.TaskRes, 0, len(tasks))
	for i := range tasks {
		out = append(out, dto.NewTaskRes(&tasks[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get はタスク1件取得APIエンドポイントを処理します。
// 他ユーザーのタスクは存在しないものとして404を返します。
func (h *TaskHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	taskID, ok := taskIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found."})
		return
	}

	task, err := h.uc.Get(c.Request.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found."})
			return
		}
		slog.Error("failed to fetch task", "error", err, "user_id", userID, "task_id", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskRes(task))
}

// Update はタスク部分更新APIエンドポイントを処理します。
// 指定されたフィールドのみ置き換え、cityが指定された場合は天気を再取得します。
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	taskID, ok := taskIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found."})
		return
	}

	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.uc.Update(c.Request.Context(), userID, taskID, usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found."})
			return
		}
		slog.Error("failed to update task", "error", err, "user_id", userID, "task_id", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskRes(task))
}

// Delete はタスク削除APIエンドポイントを処理します。
// 検索と削除は1クエリで行われ、一致しない場合は404を返します。
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	taskID, ok := taskIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found."})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), userID, taskID); err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found."})
			return
		}
		slog.Error("failed to delete task", "error", err, "user_id", userID, "task_id", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully."})
}
