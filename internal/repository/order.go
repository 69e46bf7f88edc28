package repository

import (
	"database/sql"
	"errors"

	"github.com/innovelous/agency/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

type OrderRepository interface {
	Create(order *model.Order) error
	ByID(id string) (*model.Order, error)
	All() ([]*model.Order, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}

type orderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	query := `INSERT INTO orders (id, name, email, phone, project_title, description, budget, timeline, status, file_urls, submitted_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		order.ID,
		order.Name,
		order.Email,
		order.Phone,
		order.ProjectTitle,
		order.Description,
		order.Budget,
		order.Timeline,
		order.Status,
		order.FileURLs,
		order.SubmittedAt,
	)

	return err
}

func (r *orderRepository) ByID(id string) (*model.Order, error) {
	order := &model.Order{}
	query := `SELECT * FROM orders WHERE id = $1`

	err := r.db.Get(order, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}

	return order, err
}

func (r *orderRepository) All() ([]*model.Order, error) {
	var orders []*model.Order
	query := `SELECT * FROM orders ORDER BY submitted_at DESC`

	err := r.db.Select(&orders, query)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(id, status string) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2`

	result, err := r.db.Exec(query, status, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) Delete(id string) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrOrderNotFound
	}

	return nil
}
