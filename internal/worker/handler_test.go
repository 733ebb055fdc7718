package worker_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"crisis-server/internal/messaging"
	"crisis-server/internal/mocks"
	"crisis-server/internal/model"
	"crisis-server/internal/worker"
)

const testTaskID = "task-456"

func TestTaskHandler_Handle(t *testing.T) {
	userID := uuid.New()

	t.Run("successful seeding sends success notification", func(t *testing.T) {
		mockService := mocks.NewMockScenarioService(t)
		mockNotifier := mocks.NewMockNotifier(t)
		handler := worker.NewTaskHandler(mockService, mockNotifier)

		seeded := &model.Scenario{
			ID:          uuid.New(),
			UserID:      userID,
			ScenarioKey: "technical_TECH_003_fintech-scaleup-major-days-customer",
			Source:      model.ScenarioSourceTemplate,
		}
		mockService.On("GenerateDaily", mock.Anything, userID).Return(seeded, nil).Once()
		mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("messaging.NotificationPayload")).
			Return(nil).Once().Run(func(args mock.Arguments) {
			notification := args.Get(1).(messaging.NotificationPayload)
			assert.Equal(t, testTaskID, notification.TaskID)
			assert.Equal(t, userID.String(), notification.UserID)
			assert.Equal(t, messaging.NotificationStatusSuccess, notification.Status)
			assert.Equal(t, seeded.ID.String(), notification.ScenarioID)
			assert.Equal(t, seeded.ScenarioKey, notification.ScenarioKey)
			assert.Empty(t, notification.ErrorDetails)
		})

		err := handler.Handle(messaging.SeedTaskPayload{TaskID: testTaskID, UserID: userID.String()})

		assert.NoError(t, err)
		mockService.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("invalid user id is rejected with error notification", func(t *testing.T) {
		mockService := mocks.NewMockScenarioService(t)
		mockNotifier := mocks.NewMockNotifier(t)
		handler := worker.NewTaskHandler(mockService, mockNotifier)

		mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("messaging.NotificationPayload")).
			Return(nil).Once().Run(func(args mock.Arguments) {
			notification := args.Get(1).(messaging.NotificationPayload)
			assert.Equal(t, messaging.NotificationStatusError, notification.Status)
			assert.NotEmpty(t, notification.ErrorDetails)
		})

		err := handler.Handle(messaging.SeedTaskPayload{TaskID: testTaskID, UserID: "not-a-uuid"})

		assert.Error(t, err)
		mockService.AssertNotCalled(t, "GenerateDaily")
		mockNotifier.AssertExpectations(t)
	})

	t.Run("generation failure sends error notification", func(t *testing.T) {
		mockService := mocks.NewMockScenarioService(t)
		mockNotifier := mocks.NewMockNotifier(t)
		handler := worker.NewTaskHandler(mockService, mockNotifier)

		mockService.On("GenerateDaily", mock.Anything, userID).
			Return(nil, errors.New("cache unavailable")).Once()
		mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("messaging.NotificationPayload")).
			Return(nil).Once().Run(func(args mock.Arguments) {
			notification := args.Get(1).(messaging.NotificationPayload)
			assert.Equal(t, messaging.NotificationStatusError, notification.Status)
			assert.Contains(t, notification.ErrorDetails, "cache unavailable")
		})

		err := handler.Handle(messaging.SeedTaskPayload{TaskID: testTaskID, UserID: userID.String()})

		assert.Error(t, err)
		mockService.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("notify failure after success surfaces as error", func(t *testing.T) {
		mockService := mocks.NewMockScenarioService(t)
		mockNotifier := mocks.NewMockNotifier(t)
		handler := worker.NewTaskHandler(mockService, mockNotifier)

		mockService.On("GenerateDaily", mock.Anything, userID).
			Return(&model.Scenario{ID: uuid.New(), UserID: userID}, nil).Once()
		mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("messaging.NotificationPayload")).
			Return(errors.New("broker gone")).Once()

		err := handler.Handle(messaging.SeedTaskPayload{TaskID: testTaskID, UserID: userID.String()})

		assert.Error(t, err)
		mockNotifier.AssertExpectations(t)
	})
}
