package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studioops/infras/otel/mocks"
	"studioops/internal/domains/assignment/model"
	"studioops/internal/domains/assignment/model/dto"
	"studioops/internal/domains/assignment/service"
	bookingModel "studioops/internal/domains/booking/model"
	bookingDto "studioops/internal/domains/booking/model/dto"
	bookingMocks "studioops/internal/domains/booking/service/mocks"
	crewModel "studioops/internal/domains/crew/model"
	crewMocks "studioops/internal/domains/crew/service/mocks"
	"studioops/shared/failure"
)

func activeRoster() []crewModel.Crew {
	return []crewModel.Crew{
		{ID: "crew-a", Name: "Alice", Role: "photographer", IsActive: true},
		{ID: "crew-b", Name: "Bob", Role: "videographer", IsActive: true},
		{ID: "crew-c", Name: "Cleo", Role: "editor", IsActive: true},
	}
}

func newDraft(t *testing.T, crew *crewMocks.MockCrew, bookings *bookingMocks.MockBooking) (service.Manager, service.Reconciler, string) {
	t.Helper()

	manager := service.NewManager(crew, bookings, mocks.NewOtel())

	id := manager.OpenDraft()

	reconciler, err := manager.Draft(id)
	require.NoError(t, err)

	return manager, reconciler, id
}

func TestReconciler_DraftAddCrew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	_, reconciler, _ := newDraft(t, mockCrew, mockBookings)

	mockCrew.EXPECT().
		ListActive(gomock.Any()).
		Return(activeRoster(), nil).
		AnyTimes()

	res, err := reconciler.AddCrew(context.Background(), "crew-a")
	assert.NoError(t, err)
	assert.Equal(t, "crew-a", res.CrewID)
	assert.Equal(t, "Alice", res.CrewName)
	assert.Equal(t, bookingModel.StatusPending, res.Status)
	assert.Equal(t, bookingModel.PaymentStatusPending, res.PaymentStatus)
	assert.Empty(t, res.ID, "staged assignment must not look persisted")

	_, err = reconciler.AddCrew(context.Background(), "crew-a")
	assert.True(t, failure.IsConflict(err))

	_, err = reconciler.AddCrew(context.Background(), "crew-z")
	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))

	assert.Equal(t, model.ModeDraft, reconciler.Mode())
}

func TestReconciler_DraftAddCrew_RosterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	_, reconciler, _ := newDraft(t, mockCrew, mockBookings)

	mockCrew.EXPECT().
		ListActive(gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err := reconciler.AddCrew(context.Background(), "crew-a")
	assert.Error(t, err)
}

func TestReconciler_DraftRemoveCrew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	_, reconciler, _ := newDraft(t, mockCrew, mockBookings)

	mockCrew.EXPECT().
		ListActive(gomock.Any()).
		Return(activeRoster(), nil).
		AnyTimes()

	ctx := context.Background()

	_, err := reconciler.AddCrew(ctx, "crew-a")
	require.NoError(t, err)
	_, err = reconciler.AddCrew(ctx, "crew-b")
	require.NoError(t, err)

	assert.NoError(t, reconciler.RemoveCrew(ctx, "crew-a"))

	staged, err := reconciler.Assignments(ctx)
	assert.NoError(t, err)
	require.Len(t, staged, 1)
	assert.Equal(t, "crew-b", staged[0].CrewID)

	// removing someone who was never staged is a no-op
	assert.NoError(t, reconciler.RemoveCrew(ctx, "crew-z"))
}

func TestReconciler_DraftUpdateAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	_, reconciler, _ := newDraft(t, mockCrew, mockBookings)

	mockCrew.EXPECT().
		ListActive(gomock.Any()).
		Return(activeRoster(), nil).
		AnyTimes()

	ctx := context.Background()

	_, err := reconciler.AddCrew(ctx, "crew-a")
	require.NoError(t, err)

	err = reconciler.UpdateAssignment(ctx, "crew-a", dto.UpdateAssignmentRequest{})
	assert.Equal(t, 400, failure.GetCode(err))

	err = reconciler.UpdateAssignment(ctx, "crew-a", dto.UpdateAssignmentRequest{
		Salary:        "1500000",
		PaymentStatus: bookingModel.PaymentStatusCompleted,
	})
	assert.NoError(t, err)

	staged, err := reconciler.Assignments(ctx)
	assert.NoError(t, err)
	require.Len(t, staged, 1)
	assert.Equal(t, "1500000", staged[0].Salary)
	assert.Equal(t, bookingModel.PaymentStatusCompleted, staged[0].PaymentStatus)

	err = reconciler.UpdateAssignment(ctx, "crew-z", dto.UpdateAssignmentRequest{Salary: "1"})
	assert.True(t, failure.IsNotFound(err))
}

func TestReconciler_Commit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	_, reconciler, _ := newDraft(t, mockCrew, mockBookings)

	mockCrew.EXPECT().
		ListActive(gomock.Any()).
		Return(activeRoster(), nil).
		AnyTimes()

	ctx := context.Background()

	for _, id := range []string{"crew-a", "crew-b", "crew-c"} {
		_, err := reconciler.AddCrew(ctx, id)
		require.NoError(t, err)
	}

	mockBookings.EXPECT().
		Create(gomock.Any(), "event-1", "crew-a").
		Return(bookingDto.BookingResponse{ID: "booking-a", CrewID: "crew-a"}, nil)

	mockBookings.EXPECT().
		Create(gomock.Any(), "event-1", "crew-b").
		Return(bookingDto.BookingResponse{}, failure.Conflict("crew member is already assigned to this event"))

	mockBookings.EXPECT().
		Create(gomock.Any(), "event-1", "crew-c").
		Return(bookingDto.BookingResponse{ID: "booking-c", CrewID: "crew-c"}, nil)

	results, err := reconciler.Commit(ctx, "event-1")
	assert.NoError(t, err, "item failures must not fail the commit")
	require.Len(t, results, 3)

	assert.Equal(t, "crew-a", results[0].CrewID)
	assert.True(t, results[0].OK)

	assert.Equal(t, "crew-b", results[1].CrewID)
	assert.False(t, results[1].OK)
	assert.Contains(t, results[1].Error, "already assigned")

	assert.Equal(t, "crew-c", results[2].CrewID)
	assert.True(t, results[2].OK)

	assert.Equal(t, model.ModeCommitted, reconciler.Mode())

	// a second commit is invalid whatever the first one produced
	_, err = reconciler.Commit(ctx, "event-1")
	assert.True(t, failure.IsConflict(err))
}

func TestReconciler_CommitAppliesStagedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	_, reconciler, _ := newDraft(t, mockCrew, mockBookings)

	mockCrew.EXPECT().
		ListActive(gomock.Any()).
		Return(activeRoster(), nil).
		AnyTimes()

	ctx := context.Background()

	_, err := reconciler.AddCrew(ctx, "crew-a")
	require.NoError(t, err)

	err = reconciler.UpdateAssignment(ctx, "crew-a", dto.UpdateAssignmentRequest{Salary: "2000000"})
	require.NoError(t, err)

	mockBookings.EXPECT().
		Create(gomock.Any(), "event-1", "crew-a").
		Return(bookingDto.BookingResponse{ID: "booking-a", CrewID: "crew-a"}, nil)

	mockBookings.EXPECT().
		Update(gomock.Any(), bookingDto.UpdateBookingRequest{Salary: "2000000"}, "booking-a").
		Return(nil)

	results, err := reconciler.Commit(ctx, "event-1")
	assert.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].OK)
}

func TestReconciler_CommitEmptyDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	_, reconciler, _ := newDraft(t, mockCrew, mockBookings)

	results, err := reconciler.Commit(context.Background(), "event-1")
	assert.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, model.ModeCommitted, reconciler.Mode())
}

func TestReconciler_Discard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	_, reconciler, _ := newDraft(t, mockCrew, mockBookings)

	mockCrew.EXPECT().
		ListActive(gomock.Any()).
		Return(activeRoster(), nil).
		AnyTimes()

	ctx := context.Background()

	_, err := reconciler.AddCrew(ctx, "crew-a")
	require.NoError(t, err)

	assert.NoError(t, reconciler.Discard())

	staged, err := reconciler.Assignments(ctx)
	assert.NoError(t, err)
	assert.Empty(t, staged)

	_, err = reconciler.Commit(ctx, "event-1")
	require.NoError(t, err)

	assert.True(t, failure.IsConflict(reconciler.Discard()))
}

func TestReconciler_CommittedOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	manager := service.NewManager(mockCrew, mockBookings, mocks.NewOtel())
	reconciler := manager.ForEvent("event-1")

	ctx := context.Background()

	assert.Equal(t, model.ModeCommitted, reconciler.Mode())

	mockBookings.EXPECT().
		Create(gomock.Any(), "event-1", "crew-a").
		Return(bookingDto.BookingResponse{ID: "booking-a", EventID: "event-1", CrewID: "crew-a"}, nil)

	res, err := reconciler.AddCrew(ctx, "crew-a")
	assert.NoError(t, err)
	assert.Equal(t, "booking-a", res.ID)

	listing := []bookingDto.BookingResponse{
		{ID: "booking-a", EventID: "event-1", CrewID: "crew-a"},
	}

	mockBookings.EXPECT().
		ListForEvent(gomock.Any(), "event-1").
		Return(listing, nil)

	mockBookings.EXPECT().
		Delete(gomock.Any(), "booking-a").
		Return(nil)

	assert.NoError(t, reconciler.RemoveCrew(ctx, "crew-a"))

	// absent crew: listing comes back empty, nothing to delete
	mockBookings.EXPECT().
		ListForEvent(gomock.Any(), "event-1").
		Return([]bookingDto.BookingResponse{}, nil)

	assert.NoError(t, reconciler.RemoveCrew(ctx, "crew-a"))
}

func TestReconciler_CommittedUpdateAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	manager := service.NewManager(mockCrew, mockBookings, mocks.NewOtel())
	reconciler := manager.ForEvent("event-1")

	ctx := context.Background()

	listing := []bookingDto.BookingResponse{
		{ID: "booking-a", EventID: "event-1", CrewID: "crew-a"},
	}

	mockBookings.EXPECT().
		ListForEvent(gomock.Any(), "event-1").
		Return(listing, nil)

	mockBookings.EXPECT().
		Update(gomock.Any(), bookingDto.UpdateBookingRequest{Salary: "500000"}, "booking-a").
		Return(nil)

	err := reconciler.UpdateAssignment(ctx, "crew-a", dto.UpdateAssignmentRequest{Salary: "500000"})
	assert.NoError(t, err)

	mockBookings.EXPECT().
		ListForEvent(gomock.Any(), "event-1").
		Return([]bookingDto.BookingResponse{}, nil)

	err = reconciler.UpdateAssignment(ctx, "crew-z", dto.UpdateAssignmentRequest{Salary: "1"})
	assert.True(t, failure.IsNotFound(err))
}

func TestReconciler_AvailableCrew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	_, reconciler, _ := newDraft(t, mockCrew, mockBookings)

	mockCrew.EXPECT().
		ListActive(gomock.Any()).
		Return(activeRoster(), nil).
		AnyTimes()

	ctx := context.Background()

	available, err := reconciler.AvailableCrew(ctx)
	assert.NoError(t, err)
	assert.Len(t, available, 3)

	_, err = reconciler.AddCrew(ctx, "crew-b")
	require.NoError(t, err)

	available, err = reconciler.AvailableCrew(ctx)
	assert.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "crew-a", available[0].ID)
	assert.Equal(t, "crew-c", available[1].ID)

	// staging round-trips: remove frees the slot again
	require.NoError(t, reconciler.RemoveCrew(ctx, "crew-b"))

	available, err = reconciler.AvailableCrew(ctx)
	assert.NoError(t, err)
	assert.Len(t, available, 3)
}

func TestReconciler_AvailableCrewCommitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCrew := crewMocks.NewMockCrew(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	manager := service.NewManager(mockCrew, mockBookings, mocks.NewOtel())
	reconciler := manager.ForEvent("event-1")

	mockCrew.EXPECT().
		ListActive(gomock.Any()).
		Return(activeRoster(), nil)

	// a declined booking still occupies its slot
	mockBookings.EXPECT().
		ListForEvent(gomock.Any(), "event-1").
		Return([]bookingDto.BookingResponse{
			{ID: "booking-b", EventID: "event-1", CrewID: "crew-b", Status: bookingModel.StatusDeclined},
		}, nil)

	available, err := reconciler.AvailableCrew(context.Background())
	assert.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "crew-a", available[0].ID)
	assert.Equal(t, "crew-c", available[1].ID)
}
