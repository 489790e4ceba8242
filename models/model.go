package models

// CategorySnapshot is the denormalized display copy of a category carried
// on a transaction row at read time. It is a point-in-time snapshot and
// can go stale; the category_id FK stays authoritative.
type CategorySnapshot struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
