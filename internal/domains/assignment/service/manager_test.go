package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studioops/infras/otel/mocks"
	"studioops/internal/domains/assignment/model"
	"studioops/internal/domains/assignment/service"
	bookingDto "studioops/internal/domains/booking/model/dto"
	bookingMocks "studioops/internal/domains/booking/service/mocks"
	crewMocks "studioops/internal/domains/crew/service/mocks"
	"studioops/shared/failure"
)

func TestManager_DraftLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	manager := service.NewManager(mockCrew, mockBookings, mocks.NewOtel())

	id := manager.OpenDraft()
	assert.NotEmpty(t, id)

	reconciler, err := manager.Draft(id)
	assert.NoError(t, err)
	assert.Equal(t, model.ModeDraft, reconciler.Mode())

	// each session is independent
	other := manager.OpenDraft()
	assert.NotEqual(t, id, other)

	_, err = manager.Draft("nonexistent-id")
	assert.True(t, failure.IsNotFound(err))

	assert.NoError(t, manager.DiscardDraft(id))

	_, err = manager.Draft(id)
	assert.True(t, failure.IsNotFound(err), "discarded session must release its id")

	assert.True(t, failure.IsNotFound(manager.DiscardDraft(id)))
}

func TestManager_Commit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	manager := service.NewManager(mockCrew, mockBookings, mocks.NewOtel())

	mockCrew.EXPECT().
		ListActive(gomock.Any()).
		Return(activeRoster(), nil).
		AnyTimes()

	ctx := context.Background()

	id := manager.OpenDraft()

	reconciler, err := manager.Draft(id)
	require.NoError(t, err)

	_, err = reconciler.AddCrew(ctx, "crew-a")
	require.NoError(t, err)

	mockBookings.EXPECT().
		Create(gomock.Any(), "event-1", "crew-a").
		Return(bookingDto.BookingResponse{ID: "booking-a", CrewID: "crew-a"}, nil)

	results, err := manager.Commit(ctx, id, "event-1")
	assert.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].OK)

	_, err = manager.Draft(id)
	assert.True(t, failure.IsNotFound(err), "committed session must release its id")

	// the committed reconciler is promoted to the event slot
	promoted := manager.ForEvent("event-1")
	assert.Equal(t, model.ModeCommitted, promoted.Mode())
	assert.Same(t, reconciler, promoted)
}

func TestManager_CommitUnknownDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	manager := service.NewManager(mockCrew, mockBookings, mocks.NewOtel())

	_, err := manager.Commit(context.Background(), "nonexistent-id", "event-1")
	assert.True(t, failure.IsNotFound(err))
}

func TestManager_ForEventReusesInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	manager := service.NewManager(mockCrew, mockBookings, mocks.NewOtel())

	first := manager.ForEvent("event-1")
	second := manager.ForEvent("event-1")
	assert.Same(t, first, second)

	other := manager.ForEvent("event-2")
	assert.NotSame(t, first, other)
}
