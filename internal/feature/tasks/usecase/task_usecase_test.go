package usecase

import (
	"context"
	"errors"
	"testing"

	"task_backend/internal/feature/tasks/domain/entity"
)

// mockTaskRepository is a mock implementation of the TaskRepository interface.
// It simulates database operations during testing.
type mockTaskRepository struct {
	CreateFunc      func(ctx context.Context, task *entity.Task) error
	FindByUserFunc  func(ctx context.Context, userID uint) ([]entity.Task, error)
	FindOwnedFunc   func(ctx context.Context, userID, taskID uint) (*entity.Task, error)
	UpdateFunc      func(ctx context.Context, task *entity.Task) error
	DeleteOwnedFunc func(ctx context.Context, userID, taskID uint) error
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Task, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskRepository) FindOwned(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
	if m.FindOwnedFunc != nil {
		return m.FindOwnedFunc(ctx, userID, taskID)
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) DeleteOwned(ctx context.Context, userID, taskID uint) error {
	if m.DeleteOwnedFunc != nil {
		return m.DeleteOwnedFunc(ctx, userID, taskID)
	}
	return nil
}

// mockWeatherRepository is a mock implementation of the WeatherRepository interface.
type mockWeatherRepository struct {
	CurrentDescriptionFunc func(ctx context.Context, city string) (string, error)
}

func (m *mockWeatherRepository) CurrentDescription(ctx context.Context, city string) (string, error) {
	if m.CurrentDescriptionFunc != nil {
		return m.CurrentDescriptionFunc(ctx, city)
	}
	return "clear sky", nil
}

func TestTaskUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("successful create with weather", func(t *testing.T) {
		var created *entity.Task
		mockRepo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				task.ID = 1
				created = task
				return nil
			},
		}
		mockWeather := &mockWeatherRepository{
			CurrentDescriptionFunc: func(ctx context.Context, city string) (string, error) {
				if city != "London" {
					t.Errorf("expected city London, got %q", city)
				}
				return "light rain", nil
			},
		}

		uc := NewTaskUsecase(mockRepo, mockWeather)
		task, err := uc.Create(ctx, 7, "Buy milk", "semi-skimmed", "London")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("repository Create was not called")
		}
		if task.UserID != 7 {
			t.Errorf("expected owner 7, got %d", task.UserID)
		}
		if task.Status != entity.StatusPending {
			t.Errorf("expected status Pending, got %q", task.Status)
		}
		if task.Weather != "light rain" {
			t.Errorf("expected weather 'light rain', got %q", task.Weather)
		}
	})

	t.Run("weather provider failure falls back without failing the create", func(t *testing.T) {
		mockRepo := &mockTaskRepository{}
		mockWeather := &mockWeatherRepository{
			CurrentDescriptionFunc: func(ctx context.Context, city string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		uc := NewTaskUsecase(mockRepo, mockWeather)
		task, err := uc.Create(ctx, 7, "Buy milk", "semi-skimmed", "London")

		if err != nil {
			t.Fatalf("create must not fail on weather errors: %v", err)
		}
		if task.Weather != WeatherUnavailable {
			t.Errorf("expected fallback weather %q, got %q", WeatherUnavailable, task.Weather)
		}
	})

	t.Run("repository create failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				return expectedErr
			},
		}

		uc := NewTaskUsecase(mockRepo, &mockWeatherRepository{})
		_, err := uc.Create(ctx, 7, "Buy milk", "semi-skimmed", "London")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}

func TestTaskUsecase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns tasks scoped to the user", func(t *testing.T) {
		mockRepo := &mockTaskRepository{
			FindByUserFunc: func(ctx context.Context, userID uint) ([]entity.Task, error) {
				if userID != 7 {
					t.Errorf("expected userID 7, got %d", userID)
				}
				return []entity.Task{{ID: 1, UserID: 7, Title: "a"}}, nil
			},
		}

		uc := NewTaskUsecase(mockRepo, &mockWeatherRepository{})
		tasks, err := uc.List(ctx, 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *entity.Task {
		return &entity.Task{
			ID:          3,
			UserID:      7,
			Title:       "old title",
			Description: "old description",
			Status:      entity.StatusPending,
			City:        "London",
			Weather:     "light rain",
		}
	}

	t.Run("task not found", func(t *testing.T) {
		mockRepo := &mockTaskRepository{} // FindOwned defaults to ErrTaskNotFound

		uc := NewTaskUsecase(mockRepo, &mockWeatherRepository{})
		_, err := uc.Update(ctx, 7, 3, UpdateTaskInput{Title: "new"})

		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})

	t.Run("partial update keeps unspecified fields and weather", func(t *testing.T) {
		weatherCalled := false
		mockRepo := &mockTaskRepository{
			FindOwnedFunc: func(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
				return existing(), nil
			},
		}
		mockWeather := &mockWeatherRepository{
			CurrentDescriptionFunc: func(ctx context.Context, city string) (string, error) {
				weatherCalled = true
				return "snow", nil
			},
		}

		uc := NewTaskUsecase(mockRepo, mockWeather)
		task, err := uc.Update(ctx, 7, 3, UpdateTaskInput{Title: "new title"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if weatherCalled {
			t.Error("weather must not be fetched when city is not supplied")
		}
		if task.Title != "new title" {
			t.Errorf("expected updated title, got %q", task.Title)
		}
		if task.Description != "old description" {
			t.Errorf("expected description preserved, got %q", task.Description)
		}
		if task.Weather != "light rain" {
			t.Errorf("expected weather preserved, got %q", task.Weather)
		}
	})

	t.Run("city change refreshes weather", func(t *testing.T) {
		mockRepo := &mockTaskRepository{
			FindOwnedFunc: func(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
				return existing(), nil
			},
		}
		mockWeather := &mockWeatherRepository{
			CurrentDescriptionFunc: func(ctx context.Context, city string) (string, error) {
				if city != "Tokyo" {
					t.Errorf("expected city Tokyo, got %q", city)
				}
				return "scattered clouds", nil
			},
		}

		uc := NewTaskUsecase(mockRepo, mockWeather)
		task, err := uc.Update(ctx, 7, 3, UpdateTaskInput{City: "Tokyo"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.City != "Tokyo" {
			t.Errorf("expected city Tokyo, got %q", task.City)
		}
		if task.Weather != "scattered clouds" {
			t.Errorf("expected refreshed weather, got %q", task.Weather)
		}
	})

	t.Run("weather failure on update applies the fallback", func(t *testing.T) {
		mockRepo := &mockTaskRepository{
			FindOwnedFunc: func(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
				return existing(), nil
			},
		}
		mockWeather := &mockWeatherRepository{
			CurrentDescriptionFunc: func(ctx context.Context, city string) (string, error) {
				return "", errors.New("timeout")
			},
		}

		uc := NewTaskUsecase(mockRepo, mockWeather)
		task, err := uc.Update(ctx, 7, 3, UpdateTaskInput{City: "Tokyo"})

		if err != nil {
			t.Fatalf("update must not fail on weather errors: %v", err)
		}
		if task.Weather != WeatherUnavailable {
			t.Errorf("expected fallback weather %q, got %q", WeatherUnavailable, task.Weather)
		}
	})
}

func TestTaskUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		mockRepo := &mockTaskRepository{
			DeleteOwnedFunc: func(ctx context.Context, userID, taskID uint) error {
				if userID != 7 || taskID != 3 {
					t.Errorf("unexpected scope: userID=%d taskID=%d", userID, taskID)
				}
				return nil
			},
		}

		uc := NewTaskUsecase(mockRepo, &mockWeatherRepository{})
		if err := uc.Delete(ctx, 7, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("task not found", func(t *testing.T) {
		mockRepo := &mockTaskRepository{
			DeleteOwnedFunc: func(ctx context.Context, userID, taskID uint) error {
				return ErrTaskNotFound
			},
		}

		uc := NewTaskUsecase(mockRepo, &mockWeatherRepository{})
		err := uc.Delete(ctx, 7, 3)

		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})
}
