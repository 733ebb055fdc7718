package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"crisis-server/internal/messaging"
	"crisis-server/internal/service"
)

// TaskHandler обрабатывает задачи посева ежедневных сценариев
type TaskHandler struct {
	scenarios service.ScenarioService
	notifier  service.Notifier
}

// NewTaskHandler создает новый экземпляр обработчика задач
func NewTaskHandler(scenarios service.ScenarioService, notifier service.Notifier) *TaskHandler {
	return &TaskHandler{
		scenarios: scenarios,
		notifier:  notifier,
	}
}

// Handle обрабатывает одну задачу посева: генерирует (и кеширует) сценарий дня
// для пользователя и отправляет уведомление о результате.
func (h *TaskHandler) Handle(payload messaging.SeedTaskPayload) error {
	IncrementTasksReceived()
	taskStartTime := time.Now()
	log.Printf("[TaskID: %s] Обработка задачи посева: UserID=%s", payload.TaskID, payload.UserID)

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		log.Printf("[TaskID: %s] Некорректный UserID '%s': %v", payload.TaskID, payload.UserID, err)
		IncrementTaskFailed("invalid_user_id")
		h.notifyError(payload, fmt.Sprintf("invalid user id: %v", err))
		return fmt.Errorf("ошибка валидации: некорректный userID '%s': %w", payload.UserID, err)
	}

	scenario, err := h.scenarios.GenerateDaily(context.Background(), userID)
	if err != nil {
		log.Printf("[TaskID: %s] Ошибка генерации ежедневного сценария: %v", payload.TaskID, err)
		IncrementTaskFailed("generation_error")
		h.notifyError(payload, err.Error())
		return fmt.Errorf("ошибка генерации ежедневного сценария: %w", err)
	}

	IncrementScenariosSeeded(string(scenario.Source))

	notification := messaging.NotificationPayload{
		TaskID:      payload.TaskID,
		UserID:      payload.UserID,
		Status:      messaging.NotificationStatusSuccess,
		ScenarioID:  scenario.ID.String(),
		ScenarioKey: scenario.ScenarioKey,
	}
	if err := h.notifier.Notify(context.Background(), notification); err != nil {
		log.Printf("[TaskID: %s] Ошибка отправки уведомления: %v", payload.TaskID, err)
		IncrementTaskFailed("notify_error")
		return fmt.Errorf("ошибка отправки уведомления: %w", err)
	}

	IncrementTaskSucceeded()
	log.Printf("[TaskID: %s] Задача посева выполнена за %v. ScenarioKey=%s, Source=%s",
		payload.TaskID, time.Since(taskStartTime), scenario.ScenarioKey, scenario.Source)
	return nil
}

// notifyError отправляет уведомление об ошибке; сбой отправки только логируется,
// так как исходная ошибка важнее.
func (h *TaskHandler) notifyError(payload messaging.SeedTaskPayload, details string) {
	notification := messaging.NotificationPayload{
		TaskID:       payload.TaskID,
		UserID:       payload.UserID,
		Status:       messaging.NotificationStatusError,
		ErrorDetails: details,
	}
	if err := h.notifier.Notify(context.Background(), notification); err != nil {
		log.Printf("[TaskID: %s] Не удалось отправить уведомление об ошибке: %v", payload.TaskID, err)
	}
}
