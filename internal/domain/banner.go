package domain

import "time"

// Banner is a promotional banner slot fetched from the upstream catalog.
type Banner struct {
	ID        string     `json:"id"`
	Title     string     `json:"title,omitempty"`
	ImageURL  string     `json:"imageUrl"`
	LinkURL   string     `json:"linkUrl,omitempty"`
	Location  string     `json:"location,omitempty"`
	IsActive  bool       `json:"isActive"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ActiveAt reports whether the banner should be shown at the given
// moment: active flag set and the moment inside the optional date window.
func (b Banner) ActiveAt(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != nil && b.StartDate.After(now) {
		return false
	}
	if b.EndDate != nil && b.EndDate.Before(now) {
		return false
	}
	return true
}
