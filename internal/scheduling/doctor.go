package scheduling

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"medical-appointment-assistant/internal/domain/entity"
)

var doctorPrefixPattern = regexp.MustCompile(`(?i)^(?:doctor|dr)(?:\.\s*|\s+|$)`)

// DoctorDirectory looks up the roster by partial name. It returns nil, nil
// when nothing matches; ambiguous fragments resolve to the first match.
type DoctorDirectory interface {
	FindDoctor(ctx context.Context, fragment string) (*entity.Doctor, error)
}

// ResolvedDoctor is a roster entry in canonical form.
type ResolvedDoctor struct {
	ID        uint
	Name      string
	Specialty string
}

type DoctorResolver struct {
	directory DoctorDirectory
}

func NewDoctorResolver(directory DoctorDirectory) *DoctorResolver {
	return &DoctorResolver{directory: directory}
}

// Resolve maps free text such as "dr. popescu" to the roster's "Dr. Andrei Popescu".
func (r *DoctorResolver) Resolve(ctx context.Context, text string) (ResolvedDoctor, error) {
	fragment := StripDoctorPrefix(text)
	if fragment == "" {
		return ResolvedDoctor{}, newFieldError(ErrUnknownDoctor, FieldDoctorName,
			"Please specify which doctor you would like to see.")
	}

	doctor, err := r.directory.FindDoctor(ctx, fragment)
	if err != nil {
		return ResolvedDoctor{}, fmt.Errorf("lookup doctor %q: %w", fragment, err)
	}
	if doctor == nil {
		return ResolvedDoctor{}, newFieldError(ErrUnknownDoctor, FieldDoctorName,
			fmt.Sprintf("I couldn't find a doctor named %q. Ask me to list the doctors to see who is available.", fragment))
	}

	return ResolvedDoctor{
		ID:        doctor.ID,
		Name:      CanonicalDoctorName(doctor.Name),
		Specialty: doctor.Specialty,
	}, nil
}

// StripDoctorPrefix removes any leading "Dr", "Dr." or "Doctor" prefixes.
func StripDoctorPrefix(name string) string {
	name = strings.TrimSpace(name)
	for {
		stripped := doctorPrefixPattern.ReplaceAllString(name, "")
		if stripped == name {
			return strings.TrimSpace(name)
		}
		name = strings.TrimSpace(stripped)
	}
}

// CanonicalDoctorName guarantees the "Dr. " prefix exactly once.
func CanonicalDoctorName(name string) string {
	bare := StripDoctorPrefix(name)
	if bare == "" {
		return ""
	}
	return "Dr. " + bare
}
