package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"anjett/contexts/storefront-commerce/purchase-ledger/domain/entities"

	"gorm.io/gorm"
)

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
	return r.db.WithContext(ctx).AutoMigrate(&purchaseModel{})
}

func (r *Repository) Add(ctx context.Context, purchase entities.Purchase) error {
	row := purchaseModelFromEntity(purchase)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) List(ctx context.Context) ([]entities.Purchase, error) {
	var rows []purchaseModel
	if err := r.db.WithContext(ctx).
		Order("purchased_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Purchase, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) FindByID(ctx context.Context, purchaseID string) (entities.Purchase, bool, error) {
	var row purchaseModel
	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", strings.TrimSpace(purchaseID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Purchase{}, false, nil
		}
		return entities.Purchase{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&purchaseModel{}).
		Error
}

type purchaseModel struct {
	PurchaseID   string    `gorm:"column:purchase_id;primaryKey"`
	ItemID       string    `gorm:"column:item_id"`
	ItemName     string    `gorm:"column:item_name"`
	Price        float64   `gorm:"column:price"`
	Kind         string    `gorm:"column:kind"`
	ArtifactType string    `gorm:"column:artifact_type"`
	PurchasedAt  time.Time `gorm:"column:purchased_at;index"`
}

func (purchaseModel) TableName() string {
	return "purchases"
}

func purchaseModelFromEntity(purchase entities.Purchase) purchaseModel {
	return purchaseModel{
		PurchaseID:   strings.TrimSpace(purchase.PurchaseID),
		ItemID:       strings.TrimSpace(purchase.ItemID),
		ItemName:     strings.TrimSpace(purchase.ItemName),
		Price:        purchase.Price,
		Kind:         string(purchase.Kind),
		ArtifactType: string(purchase.ArtifactType),
		PurchasedAt:  purchase.PurchasedAt.UTC(),
	}
}

func (m purchaseModel) toEntity() entities.Purchase {
	return entities.Purchase{
		PurchaseID:   m.PurchaseID,
		ItemID:       m.ItemID,
		ItemName:     m.ItemName,
		Price:        m.Price,
		Kind:         entities.PurchaseKind(m.Kind),
		ArtifactType: entities.ArtifactType(m.ArtifactType),
		PurchasedAt:  m.PurchasedAt.UTC(),
	}
}
