package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"crisis-server/internal/model"
	"crisis-server/internal/repository"
)

// MockProgressRepository is a mock type for the ProgressRepository type
type MockProgressRepository struct {
	mock.Mock
}

// RecordResponse provides a mock function with given fields: ctx, response
func (_m *MockProgressRepository) RecordResponse(ctx context.Context, response *model.ScenarioResponse) error {
	ret := _m.Called(ctx, response)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.ScenarioResponse) error); ok {
		r0 = rf(ctx, response)
	} else {
		err := ret.Error(0)
		if err != nil {
			r0 = err
		}
	}

	return r0
}

// GetSummary provides a mock function with given fields: ctx, userID
func (_m *MockProgressRepository) GetSummary(ctx context.Context, userID uuid.UUID) (model.ProgressSummary, error) {
	ret := _m.Called(ctx, userID)

	var r0 model.ProgressSummary
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.ProgressSummary); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(model.ProgressSummary)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// NewMockProgressRepository creates a new instance of MockProgressRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProgressRepository(t interface {
	mock.TestingT
	Helper()
}) *MockProgressRepository {
	m := &MockProgressRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.ProgressRepository = (*MockProgressRepository)(nil)
