package action

import (
	"context"
	"strings"
	"testing"
	"time"

	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	domainRepo "medical-appointment-assistant/internal/domain/repository"
	"medical-appointment-assistant/internal/repository"
	"medical-appointment-assistant/internal/scheduling"
	"medical-appointment-assistant/internal/service"
	"medical-appointment-assistant/internal/usecase"

	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

// Wednesday 2025-03-12, 10:00.
var now = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

const patient uint = 7

type rosterRepo struct {
	doctors []entity.Doctor
	err     error
}

func (r *rosterRepo) FindDoctor(_ context.Context, fragment string) (*entity.Doctor, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.doctors {
		if strings.Contains(strings.ToLower(r.doctors[i].Name), strings.ToLower(fragment)) {
			d := r.doctors[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *rosterRepo) FindByID(_ context.Context, id uint) (*entity.Doctor, error) {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			d := r.doctors[i]
			return &d, nil
		}
	}
	return nil, r.err
}

func (r *rosterRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	return r.doctors, r.err
}

func (r *rosterRepo) FindBySpecialty(_ context.Context, specialty string) ([]entity.Doctor, error) {
	var out []entity.Doctor
	for _, d := range r.doctors {
		if d.Specialty == specialty {
			out = append(out, d)
		}
	}
	return out, r.err
}

type nopAuditRepo struct{}

func (nopAuditRepo) Create(context.Context, *entity.AuditLog) error { return nil }

func (nopAuditRepo) FindByUser(context.Context, uint, int) ([]entity.AuditLog, error) {
	return nil, nil
}

type catalogRepo struct{}

func (catalogRepo) FindByKind(_ context.Context, kind entity.ProcedureKind) ([]entity.Procedure, error) {
	if kind == entity.ProcedureKindTest {
		return []entity.Procedure{
			{ID: 3, Kind: kind, Category: "Heart-Specific Markers", Name: "Troponin I/T", Description: "heart muscle injury test"},
		}, nil
	}
	return []entity.Procedure{
		{ID: 1, Kind: kind, Category: "Consultation & Control", Name: "Initial Consultation",
			Description: "comprehensive cardiac evaluation", MinPrice: decimal.NewFromInt(150), MaxPrice: decimal.NewFromInt(250), Currency: "RON"},
		{ID: 2, Kind: kind, Category: "Diagnostic Procedures", Name: "ECG/EKG",
			Description: "measures electrical activity of the heart", MinPrice: decimal.NewFromInt(50), MaxPrice: decimal.NewFromInt(100), Currency: "RON"},
	}, nil
}

func (c catalogRepo) FindPriced(ctx context.Context) ([]entity.Procedure, error) {
	return c.FindByKind(ctx, entity.ProcedureKindProcedure)
}

type patientRepo struct{}

func (patientRepo) FindByEmail(context.Context, string) (*entity.User, error) { return nil, nil }

func (patientRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	if id != patient {
		return nil, nil
	}
	return &entity.User{ID: patient, FirstName: "Ioana", LastName: "Marin"}, nil
}

type recordRepo struct{}

func (recordRepo) FindRecentByPatient(_ context.Context, patientID uint, _ int) ([]entity.MedicalRecord, error) {
	return []entity.MedicalRecord{{
		ID: 1, PatientID: patientID, Title: "Lipid panel", RecordType: entity.RecordTypeLabResult, RecordDate: "2025-02-01",
		Description: strings.Repeat("x", 120), Doctor: &entity.Doctor{Name: "Andrei Popescu"},
	}}, nil
}

type fixture struct {
	registry *Registry
	store    domainRepo.AppointmentRepository
	roster   *rosterRepo
	hook     *logtest.Hook
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	roster := &rosterRepo{doctors: []entity.Doctor{
		{ID: 1, Name: "Andrei Popescu", Specialty: entity.SpecialtyAdultCardiology},
		{ID: 2, Name: "Elena Ionescu", Specialty: entity.SpecialtyPediatricCardiology},
		{ID: 3, Name: "Mihai Georgescu", Specialty: entity.SpecialtyCardiovascularSurgery},
	}}
	store := repository.NewMemoryAppointmentRepository()
	normalizer := scheduling.NewNormalizer(scheduling.FixedClock{At: now}, roster)
	audit := service.NewAuditService(log, nopAuditRepo{})

	registry := NewDefaultRegistry(log, Dependencies{
		Appointments:   usecase.NewAppointmentUsecase(log, store, normalizer, audit),
		Doctors:        usecase.NewDoctorUsecase(log, roster),
		Catalog:        usecase.NewCatalogUsecase(log, catalogRepo{}),
		MedicalRecords: usecase.NewMedicalRecordUsecase(log, patientRepo{}, recordRepo{}),
		Normalizer:     normalizer,
	})
	return &fixture{registry: registry, store: store, roster: roster, hook: hook}
}

func request(action string, slots map[string]any, entities ...dto.Entity) *dto.ActionRequest {
	if slots == nil {
		slots = map[string]any{}
	}
	return &dto.ActionRequest{
		NextAction: action,
		SenderID:   "web-session-1",
		Tracker: dto.Tracker{
			SenderID: "web-session-1",
			Slots:    slots,
			LatestMessage: dto.LatestMessage{
				Intent:   dto.Intent{Name: "book_appointment", Confidence: 0.95},
				Entities: entities,
				Metadata: map[string]any{"user_id": float64(patient)},
			},
		},
	}
}

func (f *fixture) run(t *testing.T, req *dto.ActionRequest) *dto.ActionResponse {
	t.Helper()
	resp, err := f.registry.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("run %s: %v", req.NextAction, err)
	}
	return resp
}

func texts(resp *dto.ActionResponse) string {
	var parts []string
	for _, m := range resp.Responses {
		parts = append(parts, m.Text)
	}
	return strings.Join(parts, "\n")
}

// slotEvents returns the slot values set by resp, nil values included.
func slotEvents(resp *dto.ActionResponse) map[string]any {
	out := map[string]any{}
	for _, e := range resp.Events {
		if e.Event == "slot" {
			out[e.Name] = e.Value
		}
	}
	return out
}

func eventNames(resp *dto.ActionResponse) []string {
	var out []string
	for _, e := range resp.Events {
		out = append(out, e.Event)
	}
	return out
}

func fullBookingSlots() map[string]any {
	return map[string]any{
		SlotDate:       "tomorrow",
		SlotTime:       "10:30",
		SlotDoctorName: "Dr. Popescu",
		SlotReason:     "palpitations at night",
	}
}
