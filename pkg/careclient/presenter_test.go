package careclient

import (
	"strings"
	"testing"
)

func TestPresenterEmptyStates(t *testing.T) {
	cases := []struct {
		schema Schema
		want   string
	}{
		{MedicationSchema(), "No medications"},
		{AppointmentSchema(), "No appointments"},
		{ContactSchema(), "No emergency contacts"},
		{ActivitySchema(), "No activities"},
	}
	for _, tc := range cases {
		t.Run(tc.schema.Kind, func(t *testing.T) {
			view := NewListPresenter(tc.schema).Present(nil)
			if !view.Empty {
				t.Fatal("expected empty view")
			}
			if !strings.HasPrefix(view.EmptyMessage, tc.want) {
				t.Errorf("message = %q, want prefix %q", view.EmptyMessage, tc.want)
			}
		})
	}
}

func TestPresenterMedications(t *testing.T) {
	p := NewListPresenter(MedicationSchema())
	view := p.Present([]*Record{
		{ID: "rec-1", Fields: map[string]any{"name": "Lisinopril", "dosage": "10mg", "frequency": "once daily"}},
		{ID: "rec-2", Fields: map[string]any{"name": "Metformin", "dosage": "500mg", "frequency": "twice daily"}},
	})

	if view.Empty {
		t.Fatal("expected a populated view")
	}
	if len(view.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(view.Items))
	}
	if view.Items[0].Title != "Lisinopril" || view.Items[1].Title != "Metformin" {
		t.Errorf("order not preserved: %+v", view.Items)
	}
	if view.Items[0].Subtitle != "10mg, once daily" {
		t.Errorf("subtitle = %q", view.Items[0].Subtitle)
	}
}

func TestPresenterContactsPrimaryFlag(t *testing.T) {
	p := NewListPresenter(ContactSchema())
	view := p.Present([]*Record{
		{ID: "rec-1", Fields: map[string]any{"name": "James Smith", "relationship": "son", "phone_number": "555-0142", "is_primary": true}},
	})

	if !strings.Contains(view.Items[0].Title, "(primary)") {
		t.Errorf("title = %q, want primary marker", view.Items[0].Title)
	}
	if view.Items[0].Detail != "555-0142" {
		t.Errorf("detail = %q", view.Items[0].Detail)
	}
}

func TestPresenterAppointmentDateFormatting(t *testing.T) {
	p := NewListPresenter(AppointmentSchema())
	view := p.Present([]*Record{
		{ID: "rec-1", Fields: map[string]any{
			"title":            "Cardiology checkup",
			"doctor_name":      "Dr. Patel",
			"location":         "Riverside Clinic",
			"appointment_date": "2026-09-15T10:30:00Z",
		}},
	})

	if view.Items[0].Detail != "Sep 15, 2026 10:30 AM" {
		t.Errorf("detail = %q", view.Items[0].Detail)
	}
}

func TestPresenterDoesNotMutateInput(t *testing.T) {
	rec := &Record{ID: "rec-1", Fields: map[string]any{"name": "Lisinopril", "dosage": "10mg", "frequency": "daily"}}
	NewListPresenter(MedicationSchema()).Present([]*Record{rec})

	if len(rec.Fields) != 3 || rec.Fields["name"] != "Lisinopril" {
		t.Errorf("input mutated: %+v", rec.Fields)
	}
}
