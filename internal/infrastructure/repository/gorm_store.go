package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentGorm struct {
	Name      string `gorm:"primaryKey;size:64"`
	Body      string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (d *DocumentGorm) TableName() string {
	return "documents"
}

// GormStore keeps documents as rows of the documents table. It works with
// any gorm dialect that supports ON CONFLICT upserts (postgres, sqlite).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&DocumentGorm{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func OpenPostgres(host, user, password, dbname, port string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func (s *GormStore) Load(ctx context.Context, name string) ([]byte, error) {
	var doc DocumentGorm
	err := s.db.WithContext(ctx).First(&doc, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return []byte(doc.Body), nil
}

// Save replaces the whole row in one statement.
func (s *GormStore) Save(ctx context.Context, name string, body []byte) error {
	doc := DocumentGorm{Name: name, Body: string(body), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).
		Create(&doc).Error
}
