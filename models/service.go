package models

// ServiceCategory groups catalog entries.
type ServiceCategory string

const (
	CategoryEvent     ServiceCategory = "event"
	CategoryDaily     ServiceCategory = "daily"
	CategoryReligious ServiceCategory = "religious"
)

// ServiceOption is an optional add-on with its own price label
// (e.g. decoration or food for religious ceremonies).
type ServiceOption struct {
	Available bool   `json:"available"`
	Price     string `json:"price"`
}

// ServiceOptions bundles the add-ons a catalog entry may offer.
type ServiceOptions struct {
	Decoration      *ServiceOption `json:"decoration,omitempty"`
	Food            *ServiceOption `json:"food,omitempty"`
	FullArrangement *ServiceOption `json:"fullArrangement,omitempty"`
}

// Service is a catalog entry. Price is a formatted currency label, not an
// amount; the catalog is static display data supplied to the booking flow.
type Service struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     ServiceCategory `json:"category"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Price        string          `json:"price"`
	Rating       float64         `json:"rating"`
	Location     string          `json:"location"`
	Availability string          `json:"availability"`
	LaborCharges bool            `json:"laborCharges,omitempty"`
	Options      *ServiceOptions `json:"options,omitempty"`
}

// HelpTopic is a static help-center article.
type HelpTopic struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
