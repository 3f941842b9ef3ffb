package service

import (
	"context"
	"strings"
	"sync"

	"medical-appointment-assistant/internal/domain/entity"
)

type fakeDoctorRepo struct {
	mu      sync.Mutex
	doctors []entity.Doctor
	err     error
	lookups int
	lists   int
}

func (f *fakeDoctorRepo) FindDoctor(_ context.Context, fragment string) (*entity.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.doctors {
		if strings.Contains(strings.ToLower(d.Name), strings.ToLower(fragment)) {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByID(_ context.Context, id uint) (*entity.Doctor, error) {
	for _, d := range f.doctors {
		if d.ID == id {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Doctor(nil), f.doctors...), nil
}

func (f *fakeDoctorRepo) FindBySpecialty(_ context.Context, specialty string) ([]entity.Doctor, error) {
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
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeAuditRepo) FindByUser(_ context.Context, userID uint, limit int) ([]entity.AuditLog, error) {
	var out []entity.AuditLog
	for _, l := range f.logs {
		if l.UserID != nil && *l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeAuditRepo) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, l := range f.logs {
		out = append(out, l.Action)
	}
	return out
}

func roster() []entity.Doctor {
	return []entity.Doctor{
		{ID: 1, Name: "Andrei Popescu", Specialty: entity.SpecialtyAdultCardiology},
		{ID: 2, Name: "Elena Ionescu", Specialty: entity.SpecialtyPediatricCardiology},
	}
}
