package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BarbeariaNavalha/booking-engine/internal/config"
	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Barber{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedReferenceData(db)

	return db
}

// Catálogo e equipe iniciais. FirstOrCreate: rodar de novo não
// sobrescreve edições feitas depois.
func seedReferenceData(db *gorm.DB) {
	services := []models.Service{
		{ID: "cut", Name: "Corte Social", DurationMin: 30, Price: 50.00, Active: true},
		{ID: "beard", Name: "Design de Barba", DurationMin: 30, Price: 40.00, Active: true},
		{ID: "cut_beard", Name: "Corte + Barba", DurationMin: 60, Price: 85.00, Active: true},
		{ID: "kids", Name: "Corte Infantil", DurationMin: 40, Price: 45.00, Active: true},
	}

	for _, svc := range services {
		if err := db.Where("id = ?", svc.ID).FirstOrCreate(&svc).Error; err != nil {
			log.Printf("seed: falha ao criar serviço %s: %v", svc.ID, err)
		}
	}

	barbers := []models.Barber{
		{ID: "b1", Name: "Enzo", Specialty: "Cortes Clássicos", Rating: 4.9, Active: true},
		{ID: "b2", Name: "Gustavo", Specialty: "Design de Barba", Rating: 4.8, Active: true},
		{ID: "b3", Name: "João", Specialty: "Cortes Modernos", Rating: 4.7, Active: true},
	}

	for _, barber := range barbers {
		if err := db.Where("id = ?", barber.ID).FirstOrCreate(&barber).Error; err != nil {
			log.Printf("seed: falha ao criar barbeiro %s: %v", barber.ID, err)
		}
	}
}
