package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
	"github.com/aynul321/Vokzo-mvp/internal/notification"
)

// Connect opens PostgreSQL when the DSN carries a postgres scheme, otherwise
// a local SQLite file (pure-Go driver, also used by tests with ":memory:").
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate applies the schema for every marketplace entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.ServiceProvider{},
		&domain.ServiceCategory{},
		&domain.SubService{},
		&domain.City{},
		&domain.Booking{},
		&domain.Review{},
		&domain.PlatformSettings{},
		&notification.Notification{},
	)
}
