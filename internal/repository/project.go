package repository

import (
	"database/sql"
	"errors"

	"github.com/innovelous/agency/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

type ProjectRepository interface {
	Create(project *model.Project) error
	ByID(id string) (*model.Project, error)
	All() ([]*model.Project, error)
	ByCategory(key string) ([]*model.Project, error)
	Update(project *model.Project) error
	Delete(id string) error
}

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	query := `INSERT INTO projects (id, name, description, technologies, image_urls, demo_url, category, pinned, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		project.ID,
		project.Name,
		project.Description,
		project.Technologies,
		project.ImageURLs,
		project.DemoURL,
		project.Category,
		project.Pinned,
		project.CreatedAt,
	)

	return err
}

func (r *projectRepository) ByID(id string) (*model.Project, error) {
	project := &model.Project{}
	query := `SELECT * FROM projects WHERE id = $1`

	err := r.db.Get(project, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}

	return project, err
}

func (r *projectRepository) All() ([]*model.Project, error) {
	var projects []*model.Project
	query := `SELECT * FROM projects ORDER BY created_at DESC`

	err := r.db.Select(&projects, query)
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *projectRepository) ByCategory(key string) ([]*model.Project, error) {
	var projects []*model.Project
	query := `SELECT * FROM projects WHERE category = $1 ORDER BY created_at DESC`

	err := r.db.Select(&projects, query, key)
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *projectRepository) Update(project *model.Project) error {
	query := `UPDATE projects SET name = $1, description = $2, technologies = $3, image_urls = $4, demo_url = $5, category = $6, pinned = $7 WHERE id = $8`

	result, err := r.db.Exec(query,
		project.Name,
		project.Description,
		project.Technologies,
		project.ImageURLs,
		project.DemoURL,
		project.Category,
		project.Pinned,
		project.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) Delete(id string) error {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProjectNotFound
	}

	return nil
}
