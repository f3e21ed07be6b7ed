package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"beeos/internal/shared/config"
	"beeos/internal/shared/database"
	"beeos/internal/shows"
	"beeos/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Beeos Cinema Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

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

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"transaction_details",
		"tickets",
		"transactions",
		"seats",
		"showtimes",
		"studios",
		"films",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if _, err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	filmIDs, err := s.SeedFilms()
	if err != nil {
		return fmt.Errorf("failed to seed films: %w", err)
	}

	studioIDs, err := s.SeedStudios()
	if err != nil {
		return fmt.Errorf("failed to seed studios: %w", err)
	}

	if err := s.SeedShowtimes(filmIDs, studioIDs); err != nil {
		return fmt.Errorf("failed to seed showtimes: %w", err)
	}

	// Drop stale showtime cache and leftover booking sessions
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 1 admin and 2 regular users
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@beeos.id", users.RoleAdmin},
		{"user1", "Budi", "Santoso", "budi.santoso@gmail.com", users.RoleUser},
		{"user2", "Siti", "Rahma", "siti.rahma@gmail.com", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedFilms creates the film catalog
func (s *Seeder) SeedFilms() ([]uuid.UUID, error) {
	fmt.Println("  🎬 Seeding films...")

	var filmIDs []uuid.UUID

	filmsData := []struct {
		title       string
		genre       string
		durationMin int
		synopsis    string
	}{
		{"Laskar Senja", "Drama", 118, "A coastal village choir fights to keep its school open."},
		{"Gerbang Malam", "Horror", 102, "A night guard discovers the museum exhibits change after midnight."},
		{"Kode Merah", "Action", 127, "An off-duty detective races to stop a heist during a city blackout."},
		{"Langkah Kecil", "Family", 95, "Two siblings walk across Java to reach their grandmother's house."},
	}

	for _, filmData := range filmsData {
		film := shows.Film{
			ID:          uuid.New(),
			Title:       filmData.title,
			Genre:       filmData.genre,
			DurationMin: filmData.durationMin,
			Synopsis:    filmData.synopsis,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&film).Error; err != nil {
			return nil, fmt.Errorf("failed to create film %s: %w", film.Title, err)
		}

		filmIDs = append(filmIDs, film.ID)
		fmt.Printf("    ✅ Created film: %s\n", film.Title)
	}

	return filmIDs, nil
}

// SeedStudios creates screening rooms with their seat grids
func (s *Seeder) SeedStudios() ([]uuid.UUID, error) {
	fmt.Println("  🏟️ Seeding studios...")

	var studioIDs []uuid.UUID

	studiosData := []struct {
		name        string
		rows        int
		seatsPerRow int
	}{
		{"Studio 1", 5, 10}, // A1-E10
		{"Studio 2", 4, 8},  // A1-D8
		{"Studio 3", 6, 12}, // A1-F12
	}

	for _, studioData := range studiosData {
		studio := shows.Studio{
			ID:       uuid.New(),
			Name:     studioData.name,
			Capacity: studioData.rows * studioData.seatsPerRow,
		}

		if err := s.db.PostgreSQL.Create(&studio).Error; err != nil {
			return nil, fmt.Errorf("failed to create studio %s: %w", studio.Name, err)
		}

		if err := s.createSeatsForStudio(studio.ID, studioData.rows, studioData.seatsPerRow); err != nil {
			return nil, fmt.Errorf("failed to create seats for %s: %w", studio.Name, err)
		}

		studioIDs = append(studioIDs, studio.ID)
		fmt.Printf("    ✅ Created studio: %s (%d seats)\n", studio.Name, studio.Capacity)
	}

	return studioIDs, nil
}

// createSeatsForStudio pre-creates the seat grid rows A..rows, columns 1..seatsPerRow
func (s *Seeder) createSeatsForStudio(studioID uuid.UUID, rows, seatsPerRow int) error {
	for r := 0; r < rows; r++ {
		row := string(rune('A' + r))
		for c := 1; c <= seatsPerRow; c++ {
			seat := shows.Seat{
				ID:          uuid.New(),
				StudioID:    studioID,
				ChairNumber: fmt.Sprintf("%s%d", row, c),
				RowLine:     row,
				ColumnNo:    c,
				CreatedAt:   time.Now(),
			}

			if err := s.db.PostgreSQL.Create(&seat).Error; err != nil {
				return fmt.Errorf("failed to create seat %s: %w", seat.ChairNumber, err)
			}
		}
	}

	return nil
}

// SeedShowtimes schedules each film across the studios over the next week
func (s *Seeder) SeedShowtimes(filmIDs, studioIDs []uuid.UUID) error {
	fmt.Println("  🎪 Seeding showtimes...")

	showtimesData := []struct {
		filmIndex   int
		studioIndex int
		price       int64
		daysFromNow int
		hour        int
	}{
		{0, 0, 50000, 1, 13},
		{0, 0, 50000, 1, 19},
		{1, 1, 45000, 1, 21},
		{1, 1, 45000, 2, 21},
		{2, 2, 60000, 2, 14},
		{2, 2, 60000, 3, 20},
		{3, 0, 40000, 4, 10},
		{3, 1, 40000, 5, 10},
	}

	for _, data := range showtimesData {
		day := time.Now().AddDate(0, 0, data.daysFromNow)
		startsAt := time.Date(day.Year(), day.Month(), day.Day(), data.hour, 0, 0, 0, day.Location())

		showtime := shows.Showtime{
			ID:        uuid.New(),
			FilmID:    filmIDs[data.filmIndex],
			StudioID:  studioIDs[data.studioIndex],
			Price:     data.price,
			StartsAt:  startsAt,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&showtime).Error; err != nil {
			return fmt.Errorf("failed to create showtime: %w", err)
		}

		fmt.Printf("    ✅ Created showtime: film %d in studio %d at %s\n",
			data.filmIndex+1, data.studioIndex+1, startsAt.Format("2006-01-02 15:04"))
	}

	return nil
}
