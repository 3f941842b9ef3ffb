package service

import (
	"context"
	"errors"
	"testing"

	"medical-appointment-assistant/internal/domain/entity"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_RecordAppointment(t *testing.T) {
	tests := []struct {
		name      string
		before    interface{}
		after     interface{}
		hasBefore bool
	}{
		{"booking", nil, map[string]any{"time": "10:00"}, false},
		{"modification", map[string]any{"time": "10:00"}, map[string]any{"time": "13:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAuditRepo{}
			log, _ := logtest.NewNullLogger()
			svc := NewAuditService(log, repo)

			err := svc.RecordAppointment(context.Background(), 7, entity.AuditActionAppointmentModify, 11, tt.before, tt.after)
			require.NoError(t, err)

			require.Len(t, repo.logs, 1)
			entry := repo.logs[0]
			assert.Equal(t, entity.AuditActionAppointmentModify, entry.Action)
			assert.Equal(t, uint(7), *entry.UserID)
			assert.Equal(t, uint(11), entry.Metadata[AuditKeyAppointmentID])
			_, ok := entry.Metadata[AuditKeyBefore]
			assert.Equal(t, tt.hasBefore, ok)
			assert.Equal(t, tt.after, entry.Metadata[AuditKeyAfter])
		})
	}
}

func TestAuditService_RecordSystemHasNoUser(t *testing.T) {
	repo := &fakeAuditRepo{}
	log, _ := logtest.NewNullLogger()

	err := NewAuditService(log, repo).RecordSystem(context.Background(), entity.AuditActionAppointmentSweep, entity.JSON{"completed": 2})
	require.NoError(t, err)

	require.Len(t, repo.logs, 1)
	assert.Nil(t, repo.logs[0].UserID)
}

func TestAuditService_FailureIsLogged(t *testing.T) {
	repo := &fakeAuditRepo{err: errors.New("disk full")}
	log, hook := logtest.NewNullLogger()
	svc := NewAuditService(log, repo)

	err := svc.RecordSession(context.Background(), 3, entity.AuditActionUserLogin, nil)
	assert.Error(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "Failed to write audit log")
	assert.Equal(t, entity.AuditActionUserLogin, hook.LastEntry().Data["action"])
}
