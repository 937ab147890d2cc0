package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/aynul321/Vokzo-mvp/internal/database"
	"github.com/aynul321/Vokzo-mvp/internal/domain"
	"github.com/aynul321/Vokzo-mvp/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "vokzo.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()

	// Idempotent: a present admin account means the data is already in.
	var adminCount int64
	db.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&adminCount)
	if adminCount > 0 {
		log.Println("Data already seeded")
		return
	}

	// ================== ADMIN ==================
	log.Println("Creating admin...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		FullName:     "Admin",
		Email:        "admin@vokzo.in",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@vokzo.in / admin123")

	// ================== CATALOG ==================
	log.Println("Creating service categories...")

	type seedSub struct {
		name, icon, description string
	}
	taxonomy := []struct {
		name, icon, description string
		subs                    []seedSub
	}{
		{"Home Services", "Home", "Professional home maintenance and repair services", []seedSub{
			{"Plumber", "Wrench", "Pipe repairs, leaks, bathroom fittings"},
			{"Electrician", "Zap", "Wiring, switches, electrical repairs"},
			{"Carpenter", "Hammer", "Furniture repair, woodwork"},
			{"Painter", "Paintbrush", "Wall painting, waterproofing"},
			{"Cleaning Service", "Sparkles", "Deep cleaning, sanitization"},
			{"Pest Control", "Bug", "Termite, cockroach control"},
		}},
		{"Appliance Services", "Refrigerator", "Expert appliance repair and maintenance", []seedSub{
			{"AC Repair", "Wind", "AC servicing, gas refill, repair"},
			{"Refrigerator Repair", "Refrigerator", "Fridge repair and servicing"},
			{"Washing Machine Repair", "WashingMachine", "Washing machine servicing"},
			{"RO Service", "Droplets", "Water purifier servicing"},
		}},
		{"Tech Services", "Laptop", "Technology installation and repair services", []seedSub{
			{"Mobile Repair", "Smartphone", "Screen repair, battery replacement"},
			{"Laptop Repair", "Laptop", "Laptop servicing and repair"},
			{"CCTV Installation", "Camera", "Security camera setup"},
			{"IT Support", "Monitor", "Software, network issues"},
		}},
		{"Vehicle Services", "Car", "Vehicle repair and maintenance", []seedSub{
			{"Bike Repair", "Bike", "Two-wheeler servicing"},
			{"Car Repair", "Car", "Car servicing and repair"},
			{"Towing Service", "Truck", "Vehicle towing assistance"},
		}},
		{"Personal Services", "User", "Personal care and wellness services", []seedSub{
			{"Salon at Home", "Scissors", "Haircut, grooming at home"},
			{"Fitness Trainer", "Dumbbell", "Personal training sessions"},
			{"Makeup Artist", "Palette", "Bridal, party makeup"},
		}},
		{"Local Services", "MapPin", "Various local assistance services", []seedSub{
			{"Home Tutor", "GraduationCap", "Private tutoring"},
			{"Movers & Packers", "Package", "Relocation services"},
			{"Event Support", "Calendar", "Event planning assistance"},
		}},
	}

	for _, t := range taxonomy {
		cat := domain.ServiceCategory{Name: t.name, Icon: t.icon, Description: t.description}
		if err := db.Create(&cat).Error; err != nil {
			log.Fatal("category seed failed:", err)
		}
		for _, s := range t.subs {
			sub := domain.SubService{
				CategoryID:  cat.ID,
				Name:        s.name,
				Icon:        s.icon,
				Description: s.description,
			}
			if err := db.Create(&sub).Error; err != nil {
				log.Fatal("sub-service seed failed:", err)
			}
		}
	}

	// ================== CITIES ==================
	log.Println("Creating cities...")

	majors := []domain.City{
		{Name: "Delhi", State: "Delhi"},
		{Name: "Mumbai", State: "Maharashtra"},
		{Name: "Bangalore", State: "Karnataka"},
		{Name: "Chennai", State: "Tamil Nadu"},
		{Name: "Kolkata", State: "West Bengal"},
		{Name: "Hyderabad", State: "Telangana"},
		{Name: "Pune", State: "Maharashtra"},
		{Name: "Ahmedabad", State: "Gujarat"},
		{Name: "Jaipur", State: "Rajasthan"},
		{Name: "Lucknow", State: "Uttar Pradesh"},
	}
	towns := []string{
		"Himatnagar", "Mehsana", "Palanpur", "Nadiad", "Anand",
		"Junagadh", "Porbandar", "Gandhidham", "Bhuj", "Morbi",
	}

	for _, c := range majors {
		c.Kind = domain.CityMajor
		if err := db.Create(&c).Error; err != nil {
			log.Fatal("city seed failed:", err)
		}
	}
	for _, name := range towns {
		c := domain.City{Name: name, State: "Gujarat", Kind: domain.CityTown}
		if err := db.Create(&c).Error; err != nil {
			log.Fatal("city seed failed:", err)
		}
	}

	// ================== SETTINGS ==================
	settingsRepo := repository.NewSettingsRepository(db)
	if err := settingsRepo.SetCommission(ctx, domain.DefaultCommissionPercentage); err != nil {
		log.Fatal("settings seed failed:", err)
	}

	log.Println("Data seeded successfully")
}
