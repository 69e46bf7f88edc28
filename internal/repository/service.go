package repository

import (
	"database/sql"
	"errors"

	"github.com/innovelous/agency/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrServiceNotFound = errors.New("service not found")
)

type ServiceRepository interface {
	Create(service *model.Service) error
	ByID(id string) (*model.Service, error)
	All() ([]*model.Service, error)
	Update(service *model.Service) error
	Delete(id string) error
}

type serviceRepository struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(service *model.Service) error {
	query := `INSERT INTO services (id, icon, title, description, long_description, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		service.ID,
		service.Icon,
		service.Title,
		service.Description,
		service.LongDescription,
		service.CreatedAt,
	)

	return err
}

func (r *serviceRepository) ByID(id string) (*model.Service, error) {
	service := &model.Service{}
	query := `SELECT * FROM services WHERE id = $1`

	err := r.db.Get(service, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}

	return service, err
}

func (r *serviceRepository) All() ([]*model.Service, error) {
	var services []*model.Service
	query := `SELECT * FROM services ORDER BY created_at DESC`

	err := r.db.Select(&services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *serviceRepository) Update(service *model.Service) error {
	query := `UPDATE services SET icon = $1, title = $2, description = $3, long_description = $4 WHERE id = $5`

	result, err := r.db.Exec(query,
		service.Icon,
		service.Title,
		service.Description,
		service.LongDescription,
		service.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrServiceNotFound
	}

	return nil
}

func (r *serviceRepository) Delete(id string) error {
	query := `DELETE FROM services WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrServiceNotFound
	}

	return nil
}
