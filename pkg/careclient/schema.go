package careclient

// FieldType drives how a text input is converted for the server.
type FieldType int

const (
	FieldText FieldType = iota
	FieldDate
	FieldDateTime
	FieldNumber
	FieldBool
)

// Field describes one input on an entity form.
type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Required bool
}

// Schema describes the form for one kind of entity. Kind doubles as the
// server collection name.
type Schema struct {
	Kind   string
	Fields []Field
}

// Validate checks a draft against the schema's required fields. A value
// consisting only of whitespace counts as missing.
func (s Schema) Validate(values map[string]string) error {
	var missing []string
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		if isBlank(values[f.Name]) {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// MedicationSchema describes the medication entry form.
func MedicationSchema() Schema {
	return Schema{
		Kind: "medications",
		Fields: []Field{
			{Name: "name", Label: "Medication Name", Required: true},
			{Name: "dosage", Label: "Dosage", Required: true},
			{Name: "frequency", Label: "Frequency", Required: true},
			{Name: "start_date", Label: "Start Date", Type: FieldDate, Required: true},
			{Name: "end_date", Label: "End Date", Type: FieldDate},
			{Name: "notes", Label: "Notes"},
		},
	}
}

// AppointmentSchema describes the appointment entry form.
func AppointmentSchema() Schema {
	return Schema{
		Kind: "appointments",
		Fields: []Field{
			{Name: "title", Label: "Title", Required: true},
			{Name: "doctor_name", Label: "Doctor", Required: true},
			{Name: "location", Label: "Location", Required: true},
			{Name: "appointment_date", Label: "Date & Time", Type: FieldDateTime, Required: true},
			{Name: "notes", Label: "Notes"},
		},
	}
}

// ContactSchema describes the emergency contact form.
func ContactSchema() Schema {
	return Schema{
		Kind: "emergency-contacts",
		Fields: []Field{
			{Name: "name", Label: "Name", Required: true},
			{Name: "relationship", Label: "Relationship", Required: true},
			{Name: "phone_number", Label: "Phone Number", Required: true},
			{Name: "email", Label: "Email"},
			{Name: "is_primary", Label: "Primary Contact", Type: FieldBool},
		},
	}
}

// ActivitySchema describes the activity log form.
func ActivitySchema() Schema {
	return Schema{
		Kind: "activities",
		Fields: []Field{
			{Name: "description", Label: "Description", Required: true},
			{Name: "category", Label: "Category"},
			{Name: "duration_minutes", Label: "Duration (minutes)", Type: FieldNumber},
			{Name: "occurred_on", Label: "Date", Type: FieldDate, Required: true},
			{Name: "notes", Label: "Notes"},
		},
	}
}
