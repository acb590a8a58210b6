package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"anjett/contexts/identity-access/admin-gate/domain/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The admin state is a single row keyed by a fixed id.
const adminStateID = 1

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&adminStateModel{})
}

func (r *Repository) Load(ctx context.Context) (entities.AdminState, error) {
	var row adminStateModel
	err := r.db.WithContext(ctx).
		Where("id = ?", adminStateID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AdminState{}, nil
		}
		return entities.AdminState{}, err
	}
	return entities.AdminState{Enabled: row.Enabled, TokenHash: row.TokenHash}, nil
}

func (r *Repository) Save(ctx context.Context, state entities.AdminState) error {
	row := adminStateModel{
		ID:        adminStateID,
		Enabled:   state.Enabled,
		TokenHash: state.TokenHash,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&row).
		Error
}

type adminStateModel struct {
	ID        int    `gorm:"column:id;primaryKey"`
	Enabled   bool   `gorm:"column:enabled"`
	TokenHash string `gorm:"column:token_hash"`
}

func (adminStateModel) TableName() string {
	return "admin_state"
}
