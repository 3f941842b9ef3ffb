package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/domain/repository"
	"medical-appointment-assistant/internal/scheduling"
)

// Wednesday 2025-03-12, 10:00.
var now = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

var errDown = errors.New("connection refused")

type fakeDoctorRepo struct {
	doctors []entity.Doctor
	err     error
}

func newRoster() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: []entity.Doctor{
		{ID: 1, Name: "Andrei Popescu", Specialty: entity.SpecialtyAdultCardiology},
		{ID: 2, Name: "Elena Ionescu", Specialty: entity.SpecialtyPediatricCardiology},
		{ID: 3, Name: "Mihai Georgescu", Specialty: entity.SpecialtyCardiovascularSurgery},
		{ID: 4, Name: "Ana Dumitrescu", Specialty: entity.SpecialtyAdultCardiology},
	}}
}

func (f *fakeDoctorRepo) FindDoctor(_ context.Context, fragment string) (*entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.doctors {
		if strings.Contains(strings.ToLower(f.doctors[i].Name), strings.ToLower(fragment)) {
			d := f.doctors[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByID(_ context.Context, id uint) (*entity.Doctor, error) {
	for i := range f.doctors {
		if f.doctors[i].ID == id {
			d := f.doctors[i]
			return &d, nil
		}
	}
	return nil, f.err
}

func (f *fakeDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doctors, nil
}

func (f *fakeDoctorRepo) FindBySpecialty(_ context.Context, specialty string) ([]entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Doctor
	for _, d := range f.doctors {
		if d.Specialty == specialty {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeAuditRepo struct {
	mu   sync.Mutex
	logs []entity.AuditLog
	err  error
}

func (f *fakeAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	log.ID = int64(len(f.logs) + 1)
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeAuditRepo) FindByUser(_ context.Context, userID uint, limit int) ([]entity.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.AuditLog
	for i := len(f.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if f.logs[i].UserID != nil && *f.logs[i].UserID == userID {
			out = append(out, f.logs[i])
		}
	}
	return out, f.err
}

func (f *fakeAuditRepo) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.logs))
	for i, l := range f.logs {
		out[i] = l.Action
	}
	return out
}

type fakeUserRepo struct {
	users []entity.User
	err   error
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, f.err
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, f.err
}

type fakeRecordRepo struct {
	records   []entity.MedicalRecord
	lastLimit int
}

func (f *fakeRecordRepo) FindRecentByPatient(_ context.Context, patientID uint, limit int) ([]entity.MedicalRecord, error) {
	f.lastLimit = limit
	var out []entity.MedicalRecord
	for _, r := range f.records {
		if r.PatientID == patientID && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeProcedureRepo struct {
	procedures []entity.Procedure
	err        error
}

func (f *fakeProcedureRepo) FindByKind(_ context.Context, kind entity.ProcedureKind) ([]entity.Procedure, error) {
	var out []entity.Procedure
	for _, p := range f.procedures {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out, f.err
}

func (f *fakeProcedureRepo) FindPriced(_ context.Context) ([]entity.Procedure, error) {
	var out []entity.Procedure
	for _, p := range f.procedures {
		if p.Priced() {
			out = append(out, p)
		}
	}
	return out, f.err
}

// countingAppointmentRepo records writes and can fail them.
type countingAppointmentRepo struct {
	repository.AppointmentRepository
	updates   int
	updateErr error
}

func (r *countingAppointmentRepo) Update(ctx context.Context, id uint, columns map[string]any) error {
	r.updates++
	if r.updateErr != nil {
		return r.updateErr
	}
	return r.AppointmentRepository.Update(ctx, id, columns)
}

func testNormalizer(doctors scheduling.DoctorDirectory) *scheduling.Normalizer {
	return scheduling.NewNormalizer(scheduling.FixedClock{At: now}, doctors)
}
