package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSession struct {
	mock.Mock
}

func (m *MockSession) PublishPending(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSession) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestPendingTickJob(t *testing.T) {
	session := &MockSession{}
	session.On("PublishPending", mock.Anything).Return(nil).Once()

	job := &PendingTickJob{Publisher: session}
	assert.NoError(t, job.Process(context.Background()))
	session.AssertExpectations(t)
	session.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestResyncJob(t *testing.T) {
	session := &MockSession{}
	session.On("Refresh", mock.Anything).Return(errors.New("backend down")).Once()

	job := &ResyncJob{Refresher: session}
	assert.EqualError(t, job.Process(context.Background()), "backend down")
	session.AssertExpectations(t)
}
