package models

// Space represents a bookable study/work space as served by the StudySpace API.
// Opening and closing times are wall-clock "HH:MM" strings with no timezone.
type Space struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Location      string  `json:"location"`
	Capacity      int     `json:"capacity"`
	SpaceType     string  `json:"spaceType,omitempty"`
	Available     bool    `json:"isAvailable"`
	OpeningTime   string  `json:"openingTime"`
	ClosingTime   string  `json:"closingTime"`
	ImageFilename string  `json:"imageFilename,omitempty"`
	Price         float64 `json:"price"` // hourly rate
}

// SpaceInput carries the editable space fields for admin create/update.
type SpaceInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Location      string  `json:"location"`
	Capacity      int     `json:"capacity"`
	SpaceType     string  `json:"spaceType,omitempty"`
	Available     bool    `json:"isAvailable"`
	OpeningTime   string  `json:"openingTime"`
	ClosingTime   string  `json:"closingTime"`
	ImageFilename string  `json:"imageFilename,omitempty"`
	Price         float64 `json:"price"`
}
