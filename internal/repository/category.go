package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/innovelous/agency/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateKey     = errors.New("category key already exists")
)

type CategoryRepository interface {
	Create(category *model.Category) error
	ByID(id string) (*model.Category, error)
	ByKey(key string) (*model.Category, error)
	All() ([]*model.Category, error)
	Update(category *model.Category) error
	Delete(id string) error
}

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	query := `INSERT INTO categories (id, name, key, icon) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, category.ID, category.Name, category.Key, category.Icon)
	if err != nil {
		// Unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateKey
		}
		return err
	}

	return nil
}

func (r *categoryRepository) ByID(id string) (*model.Category, error) {
	category := &model.Category{}
	query := `SELECT * FROM categories WHERE id = $1`

	err := r.db.Get(category, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}

	return category, err
}

func (r *categoryRepository) ByKey(key string) (*model.Category, error) {
	category := &model.Category{}
	query := `SELECT * FROM categories WHERE key = $1`

	err := r.db.Get(category, query, key)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}

	return category, err
}

func (r *categoryRepository) All() ([]*model.Category, error) {
	var categories []*model.Category
	query := `SELECT * FROM categories ORDER BY name ASC`

	err := r.db.Select(&categories, query)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	query := `UPDATE categories SET name = $1, key = $2, icon = $3 WHERE id = $4`

	result, err := r.db.Exec(query, category.Name, category.Key, category.Icon, category.ID)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateKey
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) Delete(id string) error {
	// No cascade: projects referencing this category keep their key and the
	// portfolio falls back to a default icon/label.
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
