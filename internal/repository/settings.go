package repository

import (
	"database/sql"
	"errors"

	"github.com/innovelous/agency/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrSettingNotFound = errors.New("setting not found")
)

type SettingsRepository interface {
	Get(name string) (*model.Setting, error)
	Upsert(setting *model.Setting) error
}

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(name string) (*model.Setting, error) {
	setting := &model.Setting{}
	query := `SELECT * FROM admin_settings WHERE setting_name = $1`

	err := r.db.Get(setting, query, name)
	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}

	return setting, err
}

func (r *settingsRepository) Upsert(setting *model.Setting) error {
	// ON CONFLICT upsert works on both SQLite and PostgreSQL
	query := `INSERT INTO admin_settings (setting_name, setting_value) VALUES ($1, $2)
	          ON CONFLICT (setting_name) DO UPDATE SET setting_value = excluded.setting_value`

	_, err := r.db.Exec(query, setting.Name, setting.Value)
	return err
}
