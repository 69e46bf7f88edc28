package repository

import (
	"database/sql"
	"errors"

	"github.com/innovelous/agency/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrDownloadNotFound = errors.New("download not found")
)

type DownloadRepository interface {
	Create(download *model.Download) error
	ByID(id string) (*model.Download, error)
	All() ([]*model.Download, error)
	Delete(id string) error
}

type downloadRepository struct {
	db *sqlx.DB
}

func NewDownloadRepository(db *sqlx.DB) DownloadRepository {
	return &downloadRepository{db: db}
}

func (r *downloadRepository) Create(download *model.Download) error {
	query := `INSERT INTO downloads (id, title, description, category, file_size, file_type, file_url, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		download.ID,
		download.Title,
		download.Description,
		download.Category,
		download.FileSize,
		download.FileType,
		download.FileURL,
		download.CreatedAt,
	)

	return err
}

func (r *downloadRepository) ByID(id string) (*model.Download, error) {
	download := &model.Download{}
	query := `SELECT * FROM downloads WHERE id = $1`

	err := r.db.Get(download, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrDownloadNotFound
	}

	return download, err
}

func (r *downloadRepository) All() ([]*model.Download, error) {
	var downloads []*model.Download
	query := `SELECT * FROM downloads ORDER BY created_at DESC`

	err := r.db.Select(&downloads, query)
	if err != nil {
		return nil, err
	}

	return downloads, nil
}

func (r *downloadRepository) Delete(id string) error {
	query := `DELETE FROM downloads WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDownloadNotFound
	}

	return nil
}
