package model

// Category is static reference data grouping equipment items.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – human readable name (e.g. 呼吸器系).
//  Code        – unique machine readable code (e.g. "respiratory").
//  Description – optional free text description.
//  IconName    – icon reference used by the dashboard.
type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description"`
	IconName    string  `json:"iconName"`
}

// DefaultCategoryIcon is applied when a category is created without an icon.
const DefaultCategoryIcon = "fas fa-box"

// NewCategory carries the caller supplied fields for category creation.
// Zero values for IconName fall back to DefaultCategoryIcon.
type NewCategory struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description"`
	IconName    *string `json:"iconName"`
}
