package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sahilchouksey/college-compass/config"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Build DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// Init runs the AutoMigrate to create/update the documents table
func (s *GORMStore) Init() error {
	log.Println("Running GORM AutoMigrate for the document store...")

	if err := s.db.AutoMigrate(&Document{}); err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM PostgreSQL connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// List retrieves every document of a collection ordered by a data field.
// There is no pagination; catalog pages filter the full set in memory.
func (s *GORMStore) List(collection string, orderBy string) ([]Document, error) {
	if orderBy == "" {
		orderBy = "name"
	}
	var docs []Document
	result := s.db.
		Where("collection = ?", collection).
		Order(fmt.Sprintf("data->>'%s' ASC", orderBy)).
		Find(&docs)
	return docs, result.Error
}

// FindByField retrieves documents whose data field equals the given value.
func (s *GORMStore) FindByField(collection string, field string, value string) ([]Document, error) {
	var docs []Document
	result := s.db.
		Where("collection = ? AND data->>? = ?", collection, field, value).
		Find(&docs)
	return docs, result.Error
}

// Get retrieves a single document by id.
func (s *GORMStore) Get(collection string, id string) (*Document, error) {
	var doc Document
	result := s.db.Where("collection = ? AND id = ?", collection, id).First(&doc)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &doc, nil
}

// Add appends a new document and returns its generated id.
func (s *GORMStore) Add(collection string, data map[string]interface{}) (string, error) {
	doc := Document{
		ID:         uuid.NewString(),
		Collection: collection,
		Data:       datatypes.JSONMap(data),
	}
	result := s.db.Create(&doc)
	return doc.ID, result.Error
}

// Update overwrites only the listed fields of a document. Fields not
// listed keep their stored values. Concurrent writers follow
// last-write-wins with silent overwrite.
func (s *GORMStore) Update(collection string, id string, fields map[string]interface{}) error {
	doc, err := s.Get(collection, id)
	if err != nil {
		return err
	}
	if doc.Data == nil {
		doc.Data = datatypes.JSONMap{}
	}
	for k, v := range fields {
		doc.Data[k] = v
	}
	return s.db.Save(doc).Error
}

// Delete removes a document. Deleting an absent document is not an error.
func (s *GORMStore) Delete(collection string, id string) error {
	result := s.db.Where("collection = ? AND id = ?", collection, id).Delete(&Document{})
	return result.Error
}
