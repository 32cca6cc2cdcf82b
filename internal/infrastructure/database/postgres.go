package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/chatchaiw/apparel-api/internal/config"
	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Account entities
		&entity.User{},

		// Catalog entities
		&entity.Supplier{},
		&entity.FabricType{},
		&entity.NeckType{},
		&entity.SleeveType{},

		// Order entities
		&entity.Customer{},
		&entity.Order{},
		&entity.OrderItem{},

		// System entities
		&entity.AuditLog{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// forcedSlopeAnnotation marks neck names whose pattern requires the slope
// shoulder cut; those entries also carry the 40 THB surcharge as their
// additional cost.
const forcedSlopeAnnotation = "(บังคับไหล่สโลป+40 บาท/ตัว)"

var seedNeckNames = []string{
	"คอกลม",
	"คอวีชน",
	"คอวีไขว้",
	"คอวีตัด",
	"คอวีปก",
	"คอห้าเหลี่ยม",
	"คอปกคางหมู (มีลิ้น) (บังคับไหล่สโลป+40 บาท/ตัว)",
	"คอหยดนํ้า (บังคับไหล่สโลป+40 บาท/ตัว)",
	"คอห้าเหลี่ยมคางหมู (มีลิ้น) (บังคับไหล่สโลป+40 บาท/ตัว)",
	"คอห้าเหลี่ยมคางหมู (ไม่มีลื่น) (บังคับไหล่สโลป+40 บาท/ตัว)",
	"คอจีน",
	"คอวีปก (มีลิ้น)",
	"คอโปโล",
	"คอวาย",
	"คอเชิ้ตฐานตั้ง",
}

var seedFabricNames = []string{"Micro Smooth", "Micro Eyelet", "Atom", "Msed"}

var seedSleeveNames = []string{"แขนสั้น", "แขนยาว", "แขนกุด"}

// SeedDefaultData seeds the garment catalog and the admin account
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	for _, name := range seedNeckNames {
		var existing entity.NeckType
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		neck := entity.NeckType{Name: name, IsActive: true}
		if strings.Contains(name, forcedSlopeAnnotation) {
			neck.ForceSlope = true
			cost := decimal.NewFromInt(40)
			neck.AdditionalCost = &cost
		}
		if err := db.Create(&neck).Error; err != nil {
			log.Printf("Warning: failed to create neck type %s: %v", name, err)
		}
	}

	for _, name := range seedFabricNames {
		var existing entity.FabricType
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&entity.FabricType{Name: name, IsActive: true}).Error; err != nil {
			log.Printf("Warning: failed to create fabric type %s: %v", name, err)
		}
	}

	for _, name := range seedSleeveNames {
		var existing entity.SleeveType
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&entity.SleeveType{Name: name, IsActive: true}).Error; err != nil {
			log.Printf("Warning: failed to create sleeve type %s: %v", name, err)
		}
	}

	// Create admin user if configured via environment variables
	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminUsername != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("username = ?", adminUsername).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "System Admin"
				}
				adminUser := entity.User{
					Username:     adminUsername,
					PasswordHash: string(hashedPassword),
					FullName:     adminName,
					Role:         "owner",
					IsActive:     true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminUsername)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminUsername)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
