package usecase

import (
	"context"
	"strings"
	"testing"

	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/repository"
	"medical-appointment-assistant/internal/scheduling"
	"medical-appointment-assistant/internal/service"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	owner    uint = 7
	stranger uint = 8
)

type appointmentFixture struct {
	uc      AppointmentUsecase
	store   *countingAppointmentRepo
	audits  *fakeAuditRepo
	doctors *fakeDoctorRepo
	hook    *logtest.Hook
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	store := &countingAppointmentRepo{AppointmentRepository: repository.NewMemoryAppointmentRepository()}
	audits := &fakeAuditRepo{}
	doctors := newRoster()
	uc := NewAppointmentUsecase(log, store, testNormalizer(doctors), service.NewAuditService(log, audits))
	return &appointmentFixture{uc: uc, store: store, audits: audits, doctors: doctors, hook: hook}
}

func validBooking() *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		Date:       "tomorrow",
		Time:       "10:30am",
		DoctorName: "dr. popescu",
		Reason:     "chest pain when climbing stairs",
	}
}

func (f *appointmentFixture) book(t *testing.T) *dto.AppointmentResponse {
	t.Helper()
	resp, err := f.uc.Book(context.Background(), owner, validBooking())
	require.NoError(t, err)
	return resp
}

func TestAppointmentUsecase_Book(t *testing.T) {
	f := newAppointmentFixture(t)

	resp := f.book(t)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, owner, resp.PatientID)
	assert.Equal(t, uint(1), resp.DoctorID)
	assert.Equal(t, "Dr. Andrei Popescu", resp.DoctorName)
	assert.Equal(t, "2025-03-13", resp.Date)
	assert.Equal(t, "10:30", resp.Time)
	assert.Equal(t, entity.DefaultAppointmentDuration, resp.DurationMinutes)
	assert.Equal(t, "chest pain when climbing stairs", resp.Title)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), resp.Status)
	assert.Equal(t, []string{entity.AuditActionAppointmentBook}, f.audits.actions())

	stored, err := f.store.FindByID(context.Background(), resp.ID, owner)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, resp.PatientID, stored.PatientID)
	assert.Equal(t, resp.Date, stored.Date)
	assert.Equal(t, resp.Time, stored.Time)
	assert.Equal(t, resp.DoctorID, stored.DoctorID)
	assert.Equal(t, resp.DoctorName, stored.DoctorName)
	assert.Equal(t, resp.Reason, stored.Reason)
	assert.Equal(t, resp.Title, stored.Title)
	assert.Equal(t, resp.DurationMinutes, stored.DurationMinutes)
	assert.Equal(t, resp.Status, string(stored.Status))
}

func TestAppointmentUsecase_BookLongReasonVerbatim(t *testing.T) {
	f := newAppointmentFixture(t)
	req := validBooking()
	req.Reason = strings.Repeat("recurring palpitations at night ", 10)

	resp, err := f.uc.Book(context.Background(), owner, req)
	require.NoError(t, err)

	want := strings.TrimSpace(req.Reason)
	assert.Greater(t, len(want), 255)
	assert.Equal(t, want, resp.Reason)
	assert.Equal(t, want, resp.Title)
}

func TestAppointmentUsecase_BookExtras(t *testing.T) {
	f := newAppointmentFixture(t)
	req := validBooking()
	req.AppointmentType = "Echocardiogram"
	req.Duration = "45 minutes"
	req.Location = "Room 2"

	resp, err := f.uc.Book(context.Background(), owner, req)
	require.NoError(t, err)

	assert.Equal(t, "Echocardiogram", resp.Title)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, "Room 2", resp.Location)
}

func TestAppointmentUsecase_BookMissingSlots(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.uc.Book(context.Background(), owner, &dto.BookAppointmentRequest{
		Time:       "10:00",
		DoctorName: "Popescu",
	})

	ve, ok := scheduling.AsValidation(err)
	require.True(t, ok)
	assert.ErrorIs(t, err, scheduling.ErrIncompleteRequest)
	assert.Equal(t, []string{scheduling.FieldDate, scheduling.FieldReason}, ve.Missing)

	list, err := f.uc.List(context.Background(), owner, nil)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
	assert.Empty(t, f.audits.actions())
}

func TestAppointmentUsecase_BookInvalidSlots(t *testing.T) {
	f := newAppointmentFixture(t)
	req := validBooking()
	req.Time = "7pm"
	req.DoctorName = "Dr. House"

	_, err := f.uc.Book(context.Background(), owner, req)

	ve, ok := scheduling.AsValidation(err)
	require.True(t, ok)
	var fields []string
	for _, fe := range ve.Fields {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{scheduling.FieldTime, scheduling.FieldDoctorName}, fields)

	list, _ := f.uc.List(context.Background(), owner, nil)
	assert.Zero(t, list.Total)
}

func TestAppointmentUsecase_BookDirectoryFailure(t *testing.T) {
	f := newAppointmentFixture(t)
	f.doctors.err = errDown

	_, err := f.uc.Book(context.Background(), owner, validBooking())

	require.Error(t, err)
	assert.False(t, scheduling.IsValidation(err))
	assert.ErrorIs(t, err, errDown)
	assert.NotEmpty(t, f.hook.Entries)
}

func TestAppointmentUsecase_AuditFailureDoesNotFailBooking(t *testing.T) {
	f := newAppointmentFixture(t)
	f.audits.err = errDown

	resp, err := f.uc.Book(context.Background(), owner, validBooking())

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestAppointmentUsecase_Get(t *testing.T) {
	f := newAppointmentFixture(t)
	booked := f.book(t)

	got, err := f.uc.Get(context.Background(), booked.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, booked.ID, got.ID)

	_, err = f.uc.Get(context.Background(), booked.ID, stranger)
	assert.ErrorIs(t, err, scheduling.ErrNotFoundOrNotOwned)
}

func TestAppointmentUsecase_List(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()

	first := f.book(t)
	req := validBooking()
	req.Date = "friday"
	req.DoctorName = "Ionescu"
	second, err := f.uc.Book(ctx, owner, req)
	require.NoError(t, err)
	_, err = f.uc.Cancel(ctx, first.ID, owner)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter *dto.AppointmentFilterRequest
		want   []uint
	}{
		{"no filter", nil, []uint{first.ID, second.ID}},
		{"relative date", &dto.AppointmentFilterRequest{Date: "Friday"}, []uint{second.ID}},
		{"doctor prefix ignored", &dto.AppointmentFilterRequest{DoctorName: "Dr. ionescu"}, []uint{second.ID}},
		{"spoken status", &dto.AppointmentFilterRequest{Status: "upcoming"}, []uint{second.ID}},
		{"cancelled", &dto.AppointmentFilterRequest{Status: "canceled"}, []uint{first.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := f.uc.List(ctx, owner, tt.filter)
			require.NoError(t, err)
			var ids []uint
			for _, a := range list.Appointments {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, len(tt.want), list.Total)
		})
	}

	other, err := f.uc.List(ctx, stranger, nil)
	require.NoError(t, err)
	assert.Zero(t, other.Total)
}

func TestAppointmentUsecase_ListRejectsBadFilters(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.uc.List(context.Background(), owner, &dto.AppointmentFilterRequest{Status: "someday"})
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)

	_, err = f.uc.List(context.Background(), owner, &dto.AppointmentFilterRequest{Date: "next blue moon"})
	assert.ErrorIs(t, err, scheduling.ErrInvalidDate)
}

func TestAppointmentUsecase_Latest(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.uc.Latest(context.Background(), owner)
	assert.ErrorIs(t, err, ErrNoUpcomingAppointment)

	f.book(t)
	second := f.book(t)

	latest, err := f.uc.Latest(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestAppointmentUsecase_Modify(t *testing.T) {
	f := newAppointmentFixture(t)
	booked := f.book(t)
	newTime := "3pm"

	resp, err := f.uc.Modify(context.Background(), booked.ID, owner, &dto.ModifyAppointmentRequest{Time: &newTime})
	require.NoError(t, err)

	assert.Equal(t, "15:00", resp.Time)
	assert.Equal(t, booked.Date, resp.Date)
	assert.Equal(t, now, resp.UpdatedAt)
	assert.Equal(t, 1, f.store.updates)

	stored, _ := f.store.FindByID(context.Background(), booked.ID, owner)
	assert.Equal(t, "15:00", stored.Time)
	assert.Equal(t, booked.Reason, stored.Reason)
	assert.Equal(t, []string{entity.AuditActionAppointmentBook, entity.AuditActionAppointmentModify}, f.audits.actions())
}

func TestAppointmentUsecase_ModifyFailureLeavesStoreUntouched(t *testing.T) {
	f := newAppointmentFixture(t)
	booked := f.book(t)
	sunday := "2025-03-16"
	reason := "follow-up on medication"

	_, err := f.uc.Modify(context.Background(), booked.ID, owner, &dto.ModifyAppointmentRequest{
		Date:   &sunday,
		Reason: &reason,
	})

	assert.ErrorIs(t, err, scheduling.ErrInvalidDate)
	assert.Zero(t, f.store.updates)
	stored, _ := f.store.FindByID(context.Background(), booked.ID, owner)
	assert.Equal(t, booked.Date, stored.Date)
	assert.Equal(t, booked.Reason, stored.Reason)
}

func TestAppointmentUsecase_ModifyNotOwned(t *testing.T) {
	f := newAppointmentFixture(t)
	booked := f.book(t)
	newTime := "11:00"

	_, err := f.uc.Modify(context.Background(), booked.ID, stranger, &dto.ModifyAppointmentRequest{Time: &newTime})

	assert.ErrorIs(t, err, scheduling.ErrNotFoundOrNotOwned)
	assert.Zero(t, f.store.updates)
}

func TestAppointmentUsecase_ModifyStoreFailure(t *testing.T) {
	f := newAppointmentFixture(t)
	booked := f.book(t)
	f.store.updateErr = errDown
	newTime := "11:00"

	_, err := f.uc.Modify(context.Background(), booked.ID, owner, &dto.ModifyAppointmentRequest{Time: &newTime})

	assert.ErrorIs(t, err, errDown)
	assert.False(t, scheduling.IsValidation(err))
}

func TestAppointmentUsecase_Cancel(t *testing.T) {
	f := newAppointmentFixture(t)
	booked := f.book(t)
	ctx := context.Background()

	resp, err := f.uc.Cancel(ctx, booked.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), resp.Status)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, now, *resp.CancelledAt)

	stored, _ := f.store.FindByID(ctx, booked.ID, owner)
	assert.Equal(t, entity.AppointmentStatusCancelled, stored.Status)
	assert.Equal(t, now, stored.UpdatedAt)

	_, err = f.uc.Cancel(ctx, booked.ID, owner)
	assert.ErrorIs(t, err, scheduling.ErrAlreadyCancelled)
	assert.Equal(t, 1, f.store.updates, "re-cancelling must not write")

	newTime := "11:00"
	_, err = f.uc.Modify(ctx, booked.ID, owner, &dto.ModifyAppointmentRequest{Time: &newTime})
	assert.ErrorIs(t, err, scheduling.ErrAlreadyCancelled)
}

func TestAppointmentUsecase_CancelNotOwned(t *testing.T) {
	f := newAppointmentFixture(t)
	booked := f.book(t)

	_, err := f.uc.Cancel(context.Background(), booked.ID, stranger)
	assert.ErrorIs(t, err, scheduling.ErrNotFoundOrNotOwned)

	_, err = f.uc.Cancel(context.Background(), 999, owner)
	assert.ErrorIs(t, err, scheduling.ErrNotFoundOrNotOwned)

	assert.Zero(t, f.store.updates)
	stored, _ := f.store.FindByID(context.Background(), booked.ID, owner)
	assert.Equal(t, entity.AppointmentStatusScheduled, stored.Status)
}

func TestAppointmentUsecase_CancelCompleted(t *testing.T) {
	f := newAppointmentFixture(t)
	booked := f.book(t)
	_, err := f.store.CompletePast(context.Background(), "2025-03-14", "00:00")
	require.NoError(t, err)

	_, err = f.uc.Cancel(context.Background(), booked.ID, owner)
	assert.ErrorIs(t, err, scheduling.ErrAlreadyCompleted)
}
