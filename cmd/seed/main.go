package main

import (
	"fmt"
	"log"
	"time"

	"turfbook/internal/blocks"
	"turfbook/internal/events"
	"turfbook/internal/pricing"
	"turfbook/internal/shared/config"
	"turfbook/internal/shared/database"
	"turfbook/internal/turfs"
	"turfbook/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB

	adminID uuid.UUID
	turfIDs map[string]uuid.UUID
}

func main() {
	fmt.Println("🌱 Starting Turfbook Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, turfIDs: make(map[string]uuid.UUID)}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"blocked_entries",
		"peak_rules",
		"events",
		"turfs",
		"users",
	}

	for _, table := range tables {
		if err := s.db.GetPostgreSQL().Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("users: %w", err)
	}
	if err := s.seedTurfs(); err != nil {
		return fmt.Errorf("turfs: %w", err)
	}
	if err := s.seedPeakRules(); err != nil {
		return fmt.Errorf("peak rules: %w", err)
	}
	if err := s.seedBlocks(); err != nil {
		return fmt.Errorf("blocks: %w", err)
	}
	if err := s.seedEvents(); err != nil {
		return fmt.Errorf("events: %w", err)
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("bcrypt: %v", err)
		}
		return string(h)
	}

	admin := users.User{
		FirstName: "Arena",
		LastName:  "Admin",
		Email:     "admin@turfbook.local",
		Phone:     "9000000001",
		Password:  hash("admin123"),
		Role:      users.RoleAdmin,
	}
	if err := s.db.GetPostgreSQL().Create(&admin).Error; err != nil {
		return err
	}
	s.adminID = admin.ID

	regulars := []users.User{
		{FirstName: "Rahul", LastName: "Sharma", Email: "rahul@example.com", Phone: "9000000002", Password: hash("password123"), Role: users.RoleUser},
		{FirstName: "Priya", LastName: "Patel", Email: "priya@example.com", Phone: "9000000003", Password: hash("password123"), Role: users.RoleUser},
	}
	for i := range regulars {
		if err := s.db.GetPostgreSQL().Create(&regulars[i]).Error; err != nil {
			return err
		}
	}

	fmt.Printf("   👤 Seeded %d users (admin: %s)\n", 1+len(regulars), admin.Email)
	return nil
}

func (s *Seeder) seedTurfs() error {
	seedTurfs := []turfs.Turf{
		{
			Name:          "Greenfield Arena",
			Description:   "Full-size 7-a-side football turf with floodlights",
			Location:      "Andheri West",
			OpeningTime:   "06:00",
			ClosingTime:   "23:00",
			SlotIncrement: 60,
			MinSlots:      1,
			MaxSlots:      3,
			BasePrice:     1000,

			WeekdayPricingEnabled: true,
			WeekdayMorning:        turfs.PriceBand{Start: "06:00", Price: 900},
			WeekdayEvening:        turfs.PriceBand{Start: "17:00", Price: 1400},

			WeekendPricingEnabled: true,
			WeekendMorning:        turfs.PriceBand{Start: "06:00", Price: 1100},
			WeekendEvening:        turfs.PriceBand{Start: "16:00", Price: 1800},

			Enabled:   true,
			CreatedBy: s.adminID,
		},
		{
			Name:          "Box Cricket Dome",
			Description:   "Indoor box cricket pitch, 30-minute slots",
			Location:      "Powai",
			OpeningTime:   "07:00",
			ClosingTime:   "22:00",
			SlotIncrement: 30,
			MinSlots:      2,
			MaxSlots:      6,
			BasePrice:     600,
			Enabled:       true,
			CreatedBy:     s.adminID,
		},
		{
			Name:           "Riverside Pitch",
			Description:    "Open ground, closed for resurfacing",
			Location:       "Thane",
			OpeningTime:    "06:00",
			ClosingTime:    "21:00",
			SlotIncrement:  60,
			MinSlots:       1,
			MaxSlots:       2,
			BasePrice:      800,
			Enabled:        false,
			DisabledReason: "Resurfacing until further notice",
			CreatedBy:      s.adminID,
		},
	}

	for i := range seedTurfs {
		if err := s.db.GetPostgreSQL().Create(&seedTurfs[i]).Error; err != nil {
			return err
		}
		s.turfIDs[seedTurfs[i].Name] = seedTurfs[i].ID
	}

	fmt.Printf("   🏟️  Seeded %d turfs\n", len(seedTurfs))
	return nil
}

func (s *Seeder) seedPeakRules() error {
	arena := s.turfIDs["Greenfield Arena"]
	nextSaturday := nextWeekday(time.Saturday).Format("2006-01-02")

	rules := []pricing.PeakRule{
		{
			TurfID:    arena,
			Kind:      pricing.KindRecurring,
			Weekdays:  []string{"Friday"},
			StartTime: "19:00",
			EndTime:   "23:00",
			Price:     2000,
			CreatedBy: s.adminID,
		},
		{
			TurfID:    arena,
			Kind:      pricing.KindSpecificDate,
			Date:      nextSaturday,
			StartTime: "17:00",
			EndTime:   "22:00",
			Price:     2500,
			CreatedBy: s.adminID,
		},
	}

	for i := range rules {
		if err := s.db.GetPostgreSQL().Create(&rules[i]).Error; err != nil {
			return err
		}
	}

	fmt.Printf("   💰 Seeded %d peak rules\n", len(rules))
	return nil
}

func (s *Seeder) seedBlocks() error {
	arena := s.turfIDs["Greenfield Arena"]
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	entry := blocks.BlockedEntry{
		TurfID:    arena,
		StartDate: tomorrow,
		BlockedRanges: []blocks.TimeRange{
			{Start: "18:00", End: "20:00"},
		},
		Reason:    "Maintenance: pitch watering",
		CreatedBy: s.adminID,
	}
	if err := s.db.GetPostgreSQL().Create(&entry).Error; err != nil {
		return err
	}

	fmt.Println("   🚧 Seeded 1 blocked entry")
	return nil
}

func (s *Seeder) seedEvents() error {
	dome := s.turfIDs["Box Cricket Dome"]
	start := nextWeekday(time.Sunday)

	event := events.Event{
		TurfID:      dome,
		Name:        "Corporate Box Cricket League",
		Description: "Invite-only weekend tournament",
		StartDate:   start.Format("2006-01-02"),
		EndDate:     start.AddDate(0, 0, 1).Format("2006-01-02"),
		StartTime:   "09:00",
		EndTime:     "13:00",
		Status:      events.StatusScheduled,
		CreatedBy:   s.adminID,
	}
	if err := s.db.GetPostgreSQL().Create(&event).Error; err != nil {
		return err
	}

	fmt.Println("   📅 Seeded 1 scheduled event")
	return nil
}

// nextWeekday returns the next occurrence of the given weekday, at least one
// day out so seeded data is always in the future.
func nextWeekday(day time.Weekday) time.Time {
	t := time.Now().AddDate(0, 0, 1)
	for t.Weekday() != day {
		t = t.AddDate(0, 0, 1)
	}
	return t
}
