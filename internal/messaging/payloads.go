package messaging

// SeedTaskPayload - структура сообщения для задачи посева ежедневного сценария
type SeedTaskPayload struct {
	TaskID string `json:"task_id"` // Уникальный ID задачи
	UserID string `json:"user_id"` // ID пользователя, для которого готовится сценарий
}

// NotificationStatus определяет статус уведомления
type NotificationStatus string

const (
	NotificationStatusSuccess NotificationStatus = "success"
	NotificationStatusError   NotificationStatus = "error"
)

// NotificationPayload - структура сообщения о результате посева
type NotificationPayload struct {
	TaskID       string             `json:"task_id"`                // ID задачи, которая завершилась
	UserID       string             `json:"user_id"`                // ID пользователя для отправки уведомления
	Status       NotificationStatus `json:"status"`                 // Статус выполнения (success/error)
	ScenarioID   string             `json:"scenario_id,omitempty"`  // ID подготовленного сценария (при успехе)
	ScenarioKey  string             `json:"scenario_key,omitempty"` // Идентичность сценария (при успехе)
	ErrorDetails string             `json:"error_details,omitempty"`
}
