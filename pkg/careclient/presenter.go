package careclient

import (
	"fmt"
	"time"
)

// ListItem is one row ready for display.
type ListItem struct {
	ID       string
	Title    string
	Subtitle string
	Detail   string
}

// ListView is a rendered list: either rows in insertion order, or an empty
// state with a kind-specific message.
type ListView struct {
	Items        []ListItem
	Empty        bool
	EmptyMessage string
}

// ListPresenter projects records into display rows. It holds no state and
// never mutates its input.
type ListPresenter struct {
	schema Schema
}

func NewListPresenter(schema Schema) *ListPresenter {
	return &ListPresenter{schema: schema}
}

var emptyMessages = map[string]string{
	"medications":        "No medications added yet. Add your first medication to get started.",
	"appointments":       "No appointments scheduled. Add your first appointment to get started.",
	"emergency-contacts": "No emergency contacts saved. Add a contact so help is a tap away.",
	"activities":         "No activities logged yet. Record your first activity to get started.",
}

// Present turns the records into a view, preserving their order.
func (p *ListPresenter) Present(records []*Record) ListView {
	if len(records) == 0 {
		msg, ok := emptyMessages[p.schema.Kind]
		if !ok {
			msg = "Nothing here yet."
		}
		return ListView{Empty: true, EmptyMessage: msg}
	}

	items := make([]ListItem, 0, len(records))
	for _, rec := range records {
		items = append(items, p.item(rec))
	}
	return ListView{Items: items}
}

func (p *ListPresenter) item(rec *Record) ListItem {
	item := ListItem{ID: rec.ID}
	switch p.schema.Kind {
	case "medications":
		item.Title = str(rec.Fields["name"])
		item.Subtitle = fmt.Sprintf("%s, %s", str(rec.Fields["dosage"]), str(rec.Fields["frequency"]))
		item.Detail = str(rec.Fields["notes"])
	case "appointments":
		item.Title = str(rec.Fields["title"])
		item.Subtitle = fmt.Sprintf("%s at %s", str(rec.Fields["doctor_name"]), str(rec.Fields["location"]))
		item.Detail = formatWhen(rec.Fields["appointment_date"])
	case "emergency-contacts":
		item.Title = str(rec.Fields["name"])
		item.Subtitle = str(rec.Fields["relationship"])
		item.Detail = str(rec.Fields["phone_number"])
		if primary, _ := rec.Fields["is_primary"].(bool); primary {
			item.Title += " (primary)"
		}
	case "activities":
		item.Title = str(rec.Fields["description"])
		item.Subtitle = str(rec.Fields["category"])
		item.Detail = formatWhen(rec.Fields["occurred_on"])
	}
	return item
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func formatWhen(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}
