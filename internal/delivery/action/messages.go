package action

import (
	"fmt"
	"strings"

	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/scheduling"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	msgSomethingWentWrong = "Sorry, something went wrong on our side. Please try again in a moment."
	msgRephrase           = "I'm not sure I understood correctly. Could you please rephrase your request?"
	msgLogin              = "Please log in so I can access your appointments."
	msgNoAppointments     = "📅 You have no appointments scheduled."
	msgNoMatches          = "📅 You have no appointments matching those filters."
	msgNoUpcoming         = "You have no upcoming appointments. Tell me which appointment you mean by its number."
	msgNoRecords          = "You don't have any medical records yet. Your records will appear here after your appointments and consultations."
	msgNoDoctors          = "**No doctors found in the database.**"
	msgAskSpecialty       = "Please specify which specialty you're interested in: Adult Cardiology, Pediatric Cardiology, or Cardiovascular Surgery."
	msgGreeting           = "Hello! I'm the clinic assistant. I can book, change or cancel appointments and tell you about our doctors, procedures and prices."
	greetingImage         = "https://cdn.pixabay.com/photo/2021/11/20/03/16/doctor-6810750_640.png"

	contactFooter = "For additional details you can reach us at:\n📞 Phone: +1 (555) 123-4567\n📧 Email: info@cardiologyclinic.com"

	recordDetailLimit = 100
)

// describe turns a validation failure into one message, listing every field
// problem when there is more than one.
func describe(ve *scheduling.ValidationError) string {
	if len(ve.Fields) <= 1 {
		return ve.Message
	}
	lines := []string{"There were some problems with your request:"}
	for _, fe := range ve.Fields {
		lines = append(lines, "• "+fe.Message)
	}
	return strings.Join(lines, "\n")
}

func bookedMessage(a *dto.AppointmentResponse) string {
	return fmt.Sprintf("✅ Appointment booked!\n📅 Date: %s\n🕐 Time: %s\n👨‍⚕️ Doctor: %s\n📝 Reason: %s\n🔖 Reference: #%d",
		a.Date, a.Time, a.DoctorName, a.Reason, a.ID)
}

func modifiedMessage(a *dto.AppointmentResponse) string {
	return fmt.Sprintf("✅ Appointment %d updated!\n📅 %s at %s with %s", a.ID, a.Date, a.Time, a.DoctorName)
}

func cancelledMessage(a *dto.AppointmentResponse) string {
	return fmt.Sprintf("❌ Appointment %d cancelled\n📅 Was: %s at %s with %s", a.ID, a.Date, a.Time, a.DoctorName)
}

func statusMarker(status string) string {
	switch entity.AppointmentStatus(status) {
	case entity.AppointmentStatusScheduled:
		return "✅"
	case entity.AppointmentStatusCancelled:
		return "❌"
	default:
		return "✔️"
	}
}

func appointmentsMessage(list *dto.AppointmentListResponse, filtered bool) string {
	if list.Total == 0 {
		if filtered {
			return msgNoMatches
		}
		return msgNoAppointments
	}
	lines := []string{"📅 Your Appointments:"}
	for _, a := range list.Appointments {
		lines = append(lines, fmt.Sprintf("%s #%d %s at %s - %s\n   Reason: %s",
			statusMarker(a.Status), a.ID, a.Date, a.Time, a.DoctorName, a.Reason))
	}
	return strings.Join(lines, "\n")
}

func doctorsMessage(list *dto.DoctorListResponse) string {
	if list.Total == 0 {
		return msgNoDoctors
	}
	var lines []string
	for i, group := range list.Specialties {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("**%s:**", group.Specialty))
		for _, d := range group.Doctors {
			lines = append(lines, "• "+d.Name)
		}
	}
	return strings.Join(lines, "\n")
}

func specialtyMessage(list *dto.DoctorListResponse) string {
	group := list.Specialties[0]
	if list.Total == 0 {
		return fmt.Sprintf("No %s doctors found in the database.", group.Specialty)
	}
	lines := []string{group.Specialty + " Doctors:"}
	for _, d := range group.Doctors {
		lines = append(lines, "• "+d.Name)
	}
	return strings.Join(lines, "\n")
}

// catalogMessage renders a catalog listing. With prices set, every entry shows
// its price range instead of its description.
func catalogMessage(heading string, list *dto.ProcedureListResponse, prices bool) string {
	lines := []string{heading, ""}
	for _, category := range list.Categories {
		lines = append(lines, strings.ToUpper(category.Category))
		for _, p := range category.Procedures {
			switch {
			case prices && p.MinPrice != nil:
				lines = append(lines, fmt.Sprintf("%s: %s - %s %s", p.Name, p.MinPrice.String(), p.MaxPrice.String(), p.Currency))
			case p.Description != "":
				lines = append(lines, fmt.Sprintf("• %s - %s", p.Name, p.Description))
			default:
				lines = append(lines, "• "+p.Name)
			}
		}
	}
	lines = append(lines, "", contactFooter)
	return strings.Join(lines, "\n")
}

func recordsMessage(list *dto.MedicalRecordListResponse) string {
	if list.Total == 0 {
		return msgNoRecords
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Here are the recent medical records for %s:\n\n", list.PatientName)
	for _, r := range list.Records {
		doctor := ""
		if r.DoctorName != "" {
			doctor = " (" + r.DoctorName + ")"
		}
		fmt.Fprintf(&b, "📋 **%s**%s\n", r.Title, doctor)
		fmt.Fprintf(&b, "   📅 Date: %s\n", r.RecordDate)
		fmt.Fprintf(&b, "   📝 Type: %s\n", recordTypeLabel(r.RecordType))
		if r.Description != "" {
			fmt.Fprintf(&b, "   📄 Details: %s\n", truncate(r.Description, recordDetailLimit))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func recordTypeLabel(recordType string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(recordType, "_", " "))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
