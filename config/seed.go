package config

import (
	"log"

	"hotel-engine/models"
	"hotel-engine/services"
)

// SeedDemoData loads a small demo inventory and two customers so the API
// is usable straight after boot. Skipped when rooms already exist.
func SeedDemoData(rooms *services.RoomService, customers *services.CustomerService) {
	if !rooms.IsEmpty() {
		log.Println("demo data already seeded")
		return
	}

	demoRooms := []struct {
		category models.RoomCategory
		rate     float64
	}{
		{models.CategorySingle, 50},
		{models.CategoryDouble, 80},
		{models.CategorySuite, 120},
		{models.CategoryBunk, 200},
	}
	for _, r := range demoRooms {
		if _, err := rooms.Register(r.category, r.rate); err != nil {
			log.Printf("warning: failed to seed %s room: %v", r.category, err)
		}
	}

	demoCustomers := []struct {
		name, email, nationalID string
		vip                     bool
	}{
		{"Daniel", "daniel@daniel.com", "12345678A", true},
		{"Adrian", "adrian@adrian.es", "87654321B", false},
	}
	for _, c := range demoCustomers {
		if _, err := customers.Register(c.name, c.email, c.nationalID, c.vip); err != nil {
			log.Printf("warning: failed to seed customer %s: %v", c.name, err)
		}
	}

	log.Println("demo rooms and customers seeded")
}
