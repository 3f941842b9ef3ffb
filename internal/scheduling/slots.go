package scheduling

import "strings"

// DateSlot carries the raw date text and its normalization result.
type DateSlot struct {
	Raw   string
	Value string
	Err   *ValidationError
}

// TimeSlot carries the raw time text and its normalization result.
type TimeSlot struct {
	Raw   string
	Value string
	Err   *ValidationError
}

// DoctorSlot carries the raw doctor text and the roster entry it resolved to.
type DoctorSlot struct {
	Raw    string
	Doctor ResolvedDoctor
	Err    *ValidationError
}

// ReasonSlot carries the raw reason text and the accepted value.
type ReasonSlot struct {
	Raw   string
	Value string
	Err   *ValidationError
}

func (s DateSlot) Missing() bool   { return isBlank(s.Raw) }
func (s TimeSlot) Missing() bool   { return isBlank(s.Raw) }
func (s DoctorSlot) Missing() bool { return isBlank(s.Raw) }
func (s ReasonSlot) Missing() bool { return isBlank(s.Raw) }

func (s DateSlot) Valid() bool   { return !s.Missing() && s.Err == nil && s.Value != "" }
func (s TimeSlot) Valid() bool   { return !s.Missing() && s.Err == nil && s.Value != "" }
func (s DoctorSlot) Valid() bool { return !s.Missing() && s.Err == nil && s.Doctor.Name != "" }
func (s ReasonSlot) Valid() bool { return !s.Missing() && s.Err == nil && s.Value != "" }

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// asValidation splits err into the validation channel and the infra channel.
func asValidation(err error) (*ValidationError, error) {
	if err == nil {
		return nil, nil
	}
	if ve, ok := AsValidation(err); ok {
		return ve, nil
	}
	return nil, err
}
