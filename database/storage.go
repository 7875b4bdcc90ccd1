package database

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Collection names used across the application.
const (
	CollectionStates        = "states"
	CollectionCities        = "cities"
	CollectionStreams       = "streams"
	CollectionCourses       = "courses"
	CollectionColleges      = "colleges"
	CollectionApprovals     = "approvals"
	CollectionAffiliations  = "affiliations"
	CollectionRecruiters    = "recruiters"
	CollectionEntranceExams = "entrance_exams"
	CollectionEnquiries     = "enquiries"
	CollectionAuditReports  = "audit_reports"
)

// ErrNotFound is returned when a document lookup yields nothing.
var ErrNotFound = errors.New("document not found")

// Document is a schemaless record keyed by an opaque id. All entities
// (states, colleges, enquiries, ...) are stored as documents; the typed
// view lives in the model package and is produced on read.
type Document struct {
	ID         string            `gorm:"type:uuid;primaryKey" json:"id"`
	Collection string            `gorm:"not null;index" json:"-"`
	Data       datatypes.JSONMap `gorm:"type:jsonb" json:"data"`
	CreatedAt  time.Time         `json:"-"`
	UpdatedAt  time.Time         `json:"-"`
}

func (Document) TableName() string {
	return "documents"
}

// Storage defines the narrow document-store surface every database
// implementation must satisfy. There are no joins and no transactions;
// relations are arrays of ids resolved by callers.
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// Document operations
	List(collection string, orderBy string) ([]Document, error)
	FindByField(collection string, field string, value string) ([]Document, error)
	Get(collection string, id string) (*Document, error)
	Add(collection string, data map[string]interface{}) (string, error)
	Update(collection string, id string, fields map[string]interface{}) error
	Delete(collection string, id string) error
}
