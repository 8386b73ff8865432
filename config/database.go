package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// MenuDB is the raw pgx pool used by the public catalog read layer.
	MenuDB *pgxpool.Pool

	// MenuGorm is the GORM handle used by the admin write path and the seeder.
	MenuGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func databaseURL() string {
	if url := os.Getenv("MENU_DB_URL"); url != "" {
		return url
	}
	log.Println("[config] MENU_DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/cafe_menu?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
	)
}

func initPgx() {
	var err error
	MenuDB, err = pgxpool.New(context.Background(), databaseURL())
	if err != nil {
		log.Fatalf("[config] unable to create pgx pool: %v", err)
	}
	if err = MenuDB.Ping(context.Background()); err != nil {
		log.Fatalf("[config] database ping failed: %v", err)
	}
	log.Println("[config] menu database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	MenuGorm, err = gorm.Open(postgres.Open(databaseURL()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("[config] failed to connect with GORM: %v", err)
	}
	if sqlDB, err := MenuGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("[config] menu database connected (GORM)")
}

func CloseDB() {
	if MenuDB != nil {
		MenuDB.Close()
	}
	if MenuGorm != nil {
		if sqlDB, _ := MenuGorm.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}
}

// WithTimeout returns a context with a 10s timeout, enough headroom for
// hosted Postgres cold starts.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
