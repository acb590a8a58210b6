package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"anjett/contexts/community-kitchen/submission-service/domain/entities"
	domainerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
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

// Migrate creates the community_recipes table and inserts the seed recipe
// when the table is empty, so a fresh database serves the same catalog as
// the in-memory store.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&communityRecipeModel{}); err != nil {
		return err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&communityRecipeModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	row := communityRecipeModelFromEntity(entities.SeedRecipe())
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	r.logger.Info("community recipes seeded",
		"event", "community_recipes_seeded",
		"module", "community-kitchen/submission-service",
		"layer", "adapter",
	)
	return nil
}

func (r *Repository) CreatePending(ctx context.Context, recipe entities.CommunityRecipe) error {
	row := communityRecipeModelFromEntity(recipe)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateSubmission
		}
		return err
	}
	return nil
}

func (r *Repository) ListPending(ctx context.Context) ([]entities.CommunityRecipe, error) {
	return r.listByStatus(ctx, entities.SubmissionStatusPending, "submitted_at DESC")
}

func (r *Repository) ListApproved(ctx context.Context) ([]entities.CommunityRecipe, error) {
	return r.listByStatus(ctx, entities.SubmissionStatusApproved, "approved_at DESC")
}

func (r *Repository) FindByID(ctx context.Context, recipeID string) (entities.CommunityRecipe, bool, error) {
	var row communityRecipeModel
	err := r.db.WithContext(ctx).
		Where("recipe_id = ?", strings.TrimSpace(recipeID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CommunityRecipe{}, false, nil
		}
		return entities.CommunityRecipe{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) Approve(ctx context.Context, recipeID string, now time.Time) (entities.CommunityRecipe, error) {
	approvedAt := now.UTC()
	result := r.db.WithContext(ctx).
		Model(&communityRecipeModel{}).
		Where("recipe_id = ?", strings.TrimSpace(recipeID)).
		Where("status = ?", string(entities.SubmissionStatusPending)).
		Updates(map[string]any{
			"status":      string(entities.SubmissionStatusApproved),
			"approved_at": approvedAt,
		})
	if result.Error != nil {
		return entities.CommunityRecipe{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.CommunityRecipe{}, domainerrors.ErrSubmissionNotFound
	}
	recipe, found, err := r.FindByID(ctx, recipeID)
	if err != nil {
		return entities.CommunityRecipe{}, err
	}
	if !found {
		return entities.CommunityRecipe{}, domainerrors.ErrSubmissionNotFound
	}
	return recipe, nil
}

func (r *Repository) RemovePending(ctx context.Context, recipeID string) error {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ?", strings.TrimSpace(recipeID)).
		Where("status = ?", string(entities.SubmissionStatusPending)).
		Delete(&communityRecipeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSubmissionNotFound
	}
	return nil
}

func (r *Repository) listByStatus(
	ctx context.Context,
	status entities.SubmissionStatus,
	order string,
) ([]entities.CommunityRecipe, error) {
	var rows []communityRecipeModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order(order).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.CommunityRecipe, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type communityRecipeModel struct {
	RecipeID    string     `gorm:"column:recipe_id;primaryKey"`
	Name        string     `gorm:"column:name"`
	ChefName    string     `gorm:"column:chef_name"`
	Preview     string     `gorm:"column:preview"`
	Tags        []byte     `gorm:"column:tags;type:jsonb"`
	Keywords    []byte     `gorm:"column:keywords;type:jsonb"`
	Ingredients []byte     `gorm:"column:ingredients;type:jsonb"`
	LockedSteps []byte     `gorm:"column:locked_steps;type:jsonb"`
	Price       float64    `gorm:"column:price"`
	Status      string     `gorm:"column:status;index"`
	SubmittedAt time.Time  `gorm:"column:submitted_at"`
	ApprovedAt  *time.Time `gorm:"column:approved_at"`
}

func (communityRecipeModel) TableName() string {
	return "community_recipes"
}

func communityRecipeModelFromEntity(recipe entities.CommunityRecipe) communityRecipeModel {
	return communityRecipeModel{
		RecipeID:    strings.TrimSpace(recipe.RecipeID),
		Name:        strings.TrimSpace(recipe.Name),
		ChefName:    strings.TrimSpace(recipe.ChefName),
		Preview:     strings.TrimSpace(recipe.Preview),
		Tags:        marshalLines(recipe.Tags),
		Keywords:    marshalLines(recipe.Keywords),
		Ingredients: marshalLines(recipe.Ingredients),
		LockedSteps: marshalLines(recipe.LockedSteps),
		Price:       recipe.Price,
		Status:      string(recipe.Status),
		SubmittedAt: recipe.SubmittedAt.UTC(),
		ApprovedAt:  normalizeOptionalTime(recipe.ApprovedAt),
	}
}

func (m communityRecipeModel) toEntity() entities.CommunityRecipe {
	price := m.Price
	if price <= 0 {
		price = entities.DefaultCardPrice
	}
	return entities.CommunityRecipe{
		RecipeID:    m.RecipeID,
		Name:        m.Name,
		ChefName:    m.ChefName,
		Preview:     m.Preview,
		Tags:        unmarshalLines(m.Tags),
		Keywords:    unmarshalLines(m.Keywords),
		Ingredients: unmarshalLines(m.Ingredients),
		LockedSteps: unmarshalLines(m.LockedSteps),
		Price:       price,
		Status:      entities.SubmissionStatus(m.Status),
		SubmittedAt: m.SubmittedAt.UTC(),
		ApprovedAt:  normalizeOptionalTime(m.ApprovedAt),
	}
}

func marshalLines(lines []string) []byte {
	if lines == nil {
		lines = []string{}
	}
	raw, _ := json.Marshal(lines)
	return raw
}

func unmarshalLines(raw []byte) []string {
	lines := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &lines)
	}
	return lines
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
