package catalog

import (
	"fmt"
	"strings"

	"karigarstop/models"
	"karigarstop/services/booking"
)

// DefaultCatalogService serves the built-in catalog. The data is static by
// design; there is no provider onboarding behind it.
type DefaultCatalogService struct{}

func opt(price string) *models.ServiceOption {
	return &models.ServiceOption{Available: true, Price: price}
}

var services = []models.Service{
	{
		ID:           "1",
		Name:         "House Cleaning",
		Category:     models.CategoryDaily,
		Description:  "Professional house cleaning service with eco-friendly products",
		Image:        "https://images.unsplash.com/photo-1581578731548-c64695cc6952?auto=format&fit=crop&q=80&w=800",
		Price:        "₹500",
		Rating:       4.5,
		Location:     "Currently Only In Mumbai",
		Availability: "Available Now",
		LaborCharges: true,
	},
	{
		ID:           "2",
		Name:         "Event Photography",
		Category:     models.CategoryEvent,
		Description:  "Professional event photography service with high-end equipment",
		Image:        "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&q=80&w=800",
		Price:        "₹2000",
		Rating:       4.8,
		Location:     "Currently Only In Mumbai",
		Availability: "Book in advance",
	},
	{
		ID:           "3",
		Name:         "Plumbing Service",
		Category:     models.CategoryDaily,
		Description:  "Expert plumbing repairs and installations",
		Image:        "https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?auto=format&fit=crop&q=80&w=800",
		Price:        "₹800",
		Rating:       4.3,
		Location:     "Currently Only In Mumbai",
		Availability: "Available 24/7",
		LaborCharges: true,
	},
	{
		ID:           "4",
		Name:         "Wedding Planning",
		Category:     models.CategoryEvent,
		Description:  "Complete wedding planning and coordination services",
		Image:        "https://images.unsplash.com/photo-1519225421980-715cb0215aed?auto=format&fit=crop&q=80&w=800",
		Price:        "₹25000",
		Rating:       4.9,
		Location:     "Currently Only In Mumbai",
		Availability: "Book 3 months ahead",
	},
	{
		ID:           "5",
		Name:         "Electrical Repairs",
		Category:     models.CategoryDaily,
		Description:  "Professional electrical repair and installation services",
		Image:        "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?auto=format&fit=crop&q=80&w=800",
		Price:        "₹600",
		Rating:       4.4,
		Location:     "Currently Only In Mumbai",
		Availability: "Same Day Service",
		LaborCharges: true,
	},
	{
		ID:           "6",
		Name:         "Corporate Event Management",
		Category:     models.CategoryEvent,
		Description:  "Full-service corporate event planning and execution",
		Image:        "https://images.unsplash.com/photo-1511578314322-379afb476865?auto=format&fit=crop&q=80&w=800",
		Price:        "₹15000",
		Rating:       4.7,
		Location:     "Currently Only In Mumbai",
		Availability: "Flexible Booking",
	},
	{
		ID:           "7",
		Name:         "Ganesh Chaturthi Celebration",
		Category:     models.CategoryReligious,
		Description:  "Complete Ganesh Chaturthi celebration arrangements including pooja, decoration, and prasad",
		Image:        "https://images.pexels.com/photos/6591154/pexels-photo-6591154.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Price:        "₹15000",
		Rating:       4.9,
		Location:     "Currently Only In Mumbai",
		Availability: "Book in advance",
		Options: &models.ServiceOptions{
			Decoration:      opt("₹5000"),
			Food:            opt("₹7000"),
			FullArrangement: opt("₹15000"),
		},
	},
	{
		ID:           "8",
		Name:         "Satyanarayan Pooja",
		Category:     models.CategoryReligious,
		Description:  "Traditional Satyanarayan Pooja with all necessary items and professional pandits",
		Image:        "https://images.pexels.com/photos/5730956/pexels-photo-5730956.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Price:        "₹11000",
		Rating:       4.8,
		Location:     "Currently Only In Mumbai",
		Availability: "Available on request",
		Options: &models.ServiceOptions{
			Decoration:      opt("₹3000"),
			Food:            opt("₹5000"),
			FullArrangement: opt("₹11000"),
		},
	},
	{
		ID:           "9",
		Name:         "Rudrabhishek",
		Category:     models.CategoryReligious,
		Description:  "Sacred Rudrabhishek ceremony with authentic Vedic rituals and arrangements",
		Image:        "https://images.pexels.com/photos/6591159/pexels-photo-6591159.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Price:        "₹13000",
		Rating:       4.9,
		Location:     "Currently Only In Mumbai",
		Availability: "Book 3 days ahead",
		Options: &models.ServiceOptions{
			Decoration:      opt("₹4000"),
			Food:            opt("₹6000"),
			FullArrangement: opt("₹13000"),
		},
	},
}

// ListServices filters by category (empty or "all" means every category) and
// by a case-insensitive substring match on name or description.
func (s *DefaultCatalogService) ListServices(category models.ServiceCategory, query string) []models.Service {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Service
	for _, svc := range services {
		if category != "" && category != "all" && svc.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(svc.Name), q) &&
			!strings.Contains(strings.ToLower(svc.Description), q) {
			continue
		}
		out = append(out, svc)
	}
	return out
}

// GetService returns the catalog entry with the given ID.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	for i := range services {
		if services[i].ID == id {
			svc := services[i]
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("service %q not found", id)
}

// TimeSlots returns the fixed schedule-step slot labels.
func (s *DefaultCatalogService) TimeSlots() []string {
	out := make([]string, len(booking.TimeSlots))
	copy(out, booking.TimeSlots)
	return out
}

// ListBookingHistory returns the static history display data. The app keeps
// no real booking records.
func (s *DefaultCatalogService) ListBookingHistory() []models.HistoryEntry {
	return []models.HistoryEntry{
		{ID: "1", ServiceName: "House Cleaning", Date: "2024-02-15", Time: "10:00 AM", Price: "₹500", Status: "completed"},
		{ID: "2", ServiceName: "Plumbing Service", Date: "2024-02-18", Time: "02:00 PM", Price: "₹800", Status: "pending"},
		{ID: "3", ServiceName: "Electrician", Date: "2024-02-10", Time: "11:00 AM", Price: "₹600", Status: "cancelled"},
	}
}
