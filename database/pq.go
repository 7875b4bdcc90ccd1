package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/sahilchouksey/college-compass/config"
	"gorm.io/datatypes"
)

// PostgreSQLStore is the raw database/sql implementation of Storage,
// selected with DB_DRIVER=pq. It stores the same documents table the
// GORM store migrates.
type PostgreSQLStore struct {
	db *sql.DB
}

func Start() (*PostgreSQLStore, error) {
	getEnv, err := config.Get()

	if err != nil {
		return nil, err
	}

	connectStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv.DB_HOST, getEnv.DB_PORT, getEnv.DB_USER_NAME, getEnv.DB_PASSWORD, getEnv.DB_NAME, getEnv.DB_SSL_MODE)

	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		fmt.Println("Unable to Start PostgresSQL Databse.")
		return nil, err
	}

	log.Println("Successfully connected to PostgresSQL Database.")
	return &PostgreSQLStore{
		db: db,
	}, nil
}

func (s *PostgreSQLStore) Init() error {
	log.Println("Initializing PostgresSQL Database.", "Initializing Tables")

	documents_table := `
	CREATE TABLE IF NOT EXISTS documents (
		id UUID PRIMARY KEY,
		collection VARCHAR(100) NOT NULL,
		data JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
	`

	_, err := s.db.Exec(documents_table)
	return err
}

func (s *PostgreSQLStore) Close() error {
	log.Println("Closing PostgresSQL Database.")
	return s.db.Close()
}

// HealthCheck verifies the database connection is alive
func (s *PostgreSQLStore) HealthCheck() error {
	return s.db.Ping()
}

func (s *PostgreSQLStore) List(collection string, orderBy string) ([]Document, error) {
	if orderBy == "" {
		orderBy = "name"
	}
	query := `SELECT id, collection, data, created_at, updated_at FROM documents WHERE collection=$1 ORDER BY data->>$2 ASC;`

	rows, err := s.db.Query(query, collection, orderBy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIntoDocuments(rows)
}

func (s *PostgreSQLStore) FindByField(collection string, field string, value string) ([]Document, error) {
	query := `SELECT id, collection, data, created_at, updated_at FROM documents WHERE collection=$1 AND data->>$2 = $3;`

	rows, err := s.db.Query(query, collection, field, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIntoDocuments(rows)
}

func (s *PostgreSQLStore) Get(collection string, id string) (*Document, error) {
	query := `SELECT id, collection, data, created_at, updated_at FROM documents WHERE collection=$1 AND id=$2;`

	rows, err := s.db.Query(query, collection, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs, err := scanIntoDocuments(rows)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return &docs[0], nil
}

func (s *PostgreSQLStore) Add(collection string, data map[string]interface{}) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	query := `INSERT INTO documents(id, collection, data) VALUES($1, $2, $3);`

	if _, err := s.db.Exec(query, id, collection, raw); err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgreSQLStore) Update(collection string, id string, fields map[string]interface{}) error {
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

	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return err
	}

	query := `UPDATE documents SET data=$1, updated_at=now() WHERE collection=$2 AND id=$3;`
	_, err = s.db.Exec(query, raw, collection, id)
	return err
}

func (s *PostgreSQLStore) Delete(collection string, id string) error {
	query := `DELETE FROM documents WHERE collection=$1 AND id=$2;`

	if _, err := s.db.Exec(query, collection, id); err != nil {
		return err
	}
	return nil
}

func scanIntoDocuments(rows *sql.Rows) ([]Document, error) {
	docs := []Document{}
	for rows.Next() {
		doc := Document{}
		var raw []byte
		if err := rows.Scan(&doc.ID, &doc.Collection, &raw, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &doc.Data); err != nil {
				return nil, err
			}
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return docs, nil
}
