package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"medical-appointment-assistant/internal/domain/entity"
	domainRepo "medical-appointment-assistant/internal/domain/repository"
)

// memoryAppointmentRepository keeps appointments in a map keyed by a
// monotonic id. Every call holds the lock for its full duration, so an
// Update is applied all at once or not at all.
type memoryAppointmentRepository struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]entity.Appointment
	now    func() time.Time
}

func NewMemoryAppointmentRepository() domainRepo.AppointmentRepository {
	return &memoryAppointmentRepository{
		nextID: 1,
		items:  make(map[uint]entity.Appointment),
		now:    time.Now,
	}
}

func (r *memoryAppointmentRepository) Insert(_ context.Context, appointment *entity.Appointment) (uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	stored := *appointment
	stored.ID = r.nextID
	stored.Doctor = nil
	if stored.Status == "" {
		stored.Status = entity.AppointmentStatusScheduled
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = stored.CreatedAt
	r.items[stored.ID] = stored
	r.nextID++

	appointment.ID = stored.ID
	appointment.CreatedAt = stored.CreatedAt
	appointment.UpdatedAt = stored.UpdatedAt
	return stored.ID, nil
}

func (r *memoryAppointmentRepository) Update(_ context.Context, id uint, columns map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return nil
	}
	if err := applyColumns(&current, columns); err != nil {
		return err
	}
	if _, stamped := columns[entity.AppointmentColumnUpdatedAt]; !stamped {
		current.UpdatedAt = r.now()
	}
	r.items[id] = current
	return nil
}

func (r *memoryAppointmentRepository) FindByID(_ context.Context, id, ownerID uint) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	if !ok || a.PatientID != ownerID {
		return nil, nil
	}
	return &a, nil
}

func (r *memoryAppointmentRepository) ListByOwner(_ context.Context, ownerID uint, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctor := strings.ToLower(filter.DoctorName)
	var out []entity.Appointment
	for _, a := range r.items {
		if a.PatientID != ownerID {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		if doctor != "" && !strings.Contains(strings.ToLower(a.DoctorName), doctor) {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryAppointmentRepository) LatestByOwner(_ context.Context, ownerID uint) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *entity.Appointment
	for _, a := range r.items {
		if a.PatientID != ownerID || !a.IsScheduled() {
			continue
		}
		// Ids are monotonic, so the highest id is the most recent booking.
		if latest == nil || a.ID > latest.ID {
			latest = &a
		}
	}
	return latest, nil
}

func (r *memoryAppointmentRepository) CompletePast(_ context.Context, date, clock string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	now := r.now()
	for id, a := range r.items {
		if !a.IsScheduled() {
			continue
		}
		if a.Date < date || (a.Date == date && a.Time < clock) {
			a.Status = entity.AppointmentStatusCompleted
			a.UpdatedAt = now
			r.items[id] = a
			n++
		}
	}
	return n, nil
}
