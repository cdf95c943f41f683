package models

// Activity is one scheduled item within a trip day. All fields are free-form
// display strings; time is not parsed or ordered, display order is slice order.
type Activity struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Notes       string `json:"notes,omitempty"`
	LocationURL string `json:"locationUrl,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// TripDay is one calendar day of the trip with its ordered activities.
type TripDay struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Tip is a static informational card shown in a modal. Read-only at runtime.
type Tip struct {
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	Content string `json:"content"`
}

// TripMeta holds the hero and closing content of the trip page.
type TripMeta struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	DateRange    string `json:"dateRange"`
	HeroImageURL string `json:"heroImageUrl"`
	Conclusion   string `json:"conclusion"`
}

// ActivityUpdate carries a partial update for an activity. Only non-nil
// slots are applied; a nil slot leaves the existing value untouched.
type ActivityUpdate struct {
	Time        *string `json:"time,omitempty"`
	Description *string `json:"description,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	LocationURL *string `json:"locationUrl,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// IsZero reports whether the update carries no fields at all.
func (u ActivityUpdate) IsZero() bool {
	return u.Time == nil && u.Description == nil && u.Notes == nil &&
		u.LocationURL == nil && u.ImageURL == nil
}

// ApplyTo merges the supplied slots onto a copy of the activity and
// returns it. The receiver and argument are left unchanged.
func (u ActivityUpdate) ApplyTo(act Activity) Activity {
	if u.Time != nil {
		act.Time = *u.Time
	}
	if u.Description != nil {
		act.Description = *u.Description
	}
	if u.Notes != nil {
		act.Notes = *u.Notes
	}
	if u.LocationURL != nil {
		act.LocationURL = *u.LocationURL
	}
	if u.ImageURL != nil {
		act.ImageURL = *u.ImageURL
	}
	return act
}

// Clone returns a deep copy of the day, including its activity slice.
func (d TripDay) Clone() TripDay {
	out := d
	out.Activities = append([]Activity(nil), d.Activities...)
	return out
}

// CloneDays deep-copies a whole day list.
func CloneDays(days []TripDay) []TripDay {
	out := make([]TripDay, 0, len(days))
	for _, d := range days {
		out = append(out, d.Clone())
	}
	return out
}
