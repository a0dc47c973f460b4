package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/gauravkdm/admin-portal/internal/domain/content"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormContentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContentRepository creates a new GORM-based ContentRepository implementation
func NewGormContentRepository(db *gorm.DB, logger logger.Logger) (content.ContentRepository, error) {
	return &gormContentRepository{
		db:     db,
		logger: logger,
	}, nil
}

type categoryRow struct {
	models.EventCategoryModel
	MappingCount int64
}

func (r *gormContentRepository) ListCategories(ctx context.Context) ([]*content.Category, error) {
	var rows []categoryRow
	if err := r.db.WithContext(ctx).Model(&models.EventCategoryModel{}).
		Select("event_categories.id, event_categories.name, event_categories.description, event_categories.unicode, event_categories.color, COUNT(event_category_mappings.id) AS mapping_count").
		Joins("LEFT JOIN event_category_mappings ON event_category_mappings.category_id = event_categories.id").
		Group("event_categories.id, event_categories.name, event_categories.description, event_categories.unicode, event_categories.color").
		Order("event_categories.id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	list := make([]*content.Category, len(rows))
	for i := range rows {
		list[i] = rows[i].ToDomain()
		list[i].MappingCount = rows[i].MappingCount
	}
	return list, nil
}

func (r *gormContentRepository) getCategory(ctx context.Context, id int64) (*content.Category, error) {
	var model models.EventCategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateNotFound(err, "category", id)
	}
	category := model.ToDomain()
	if err := r.db.WithContext(ctx).Model(&models.EventCategoryMappingModel{}).
		Where("category_id = ?", id).Count(&category.MappingCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count category mappings: %w", err)
	}
	return category, nil
}

func (r *gormContentRepository) CreateCategory(ctx context.Context, input *content.CategoryInput) (*content.Category, error) {
	model := models.EventCategoryModel{Name: strings.TrimSpace(*input.Name)}
	if input.Description != nil {
		model.Description = *input.Description
	}
	if input.Unicode != nil {
		model.Unicode = *input.Unicode
	}
	if input.Color != nil {
		model.Color = *input.Color
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Info("Created category with id ", model.ID)
	return model.ToDomain(), nil
}

func (r *gormContentRepository) UpdateCategory(ctx context.Context, id int64, input *content.CategoryInput) (*content.Category, error) {
	values := map[string]interface{}{}
	if input.Name != nil {
		values["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		values["description"] = *input.Description
	}
	if input.Unicode != nil {
		values["unicode"] = *input.Unicode
	}
	if input.Color != nil {
		values["color"] = *input.Color
	}
	if err := r.updateByID(ctx, &models.EventCategoryModel{}, "category", id, values); err != nil {
		return nil, err
	}

	r.logger.Info("Updated category with id ", id)
	return r.getCategory(ctx, id)
}

func (r *gormContentRepository) DeleteCategory(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.EventCategoryMappingModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete category mappings: %w", err)
		}
		return deleteByID(tx, &models.EventCategoryModel{}, "category", id)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted category with id ", id)
	return nil
}

func (r *gormContentRepository) ListTags(ctx context.Context, kind content.TagKind) ([]*content.Tag, error) {
	table, _ := models.TagTable(kind)

	var rows []models.TagRow
	if err := r.db.WithContext(ctx).Table(table).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", table, err)
	}

	list := make([]*content.Tag, len(rows))
	for i := range rows {
		list[i] = rows[i].ToDomain()
	}
	return list, nil
}

func (r *gormContentRepository) getTag(ctx context.Context, kind content.TagKind, id int64) (*content.Tag, error) {
	table, _ := models.TagTable(kind)

	var row models.TagRow
	if err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translateNotFound(err, string(kind), id)
	}
	return row.ToDomain(), nil
}

func (r *gormContentRepository) CreateTag(ctx context.Context, kind content.TagKind, input *content.TagInput) (*content.Tag, error) {
	table, _ := models.TagTable(kind)

	row := models.TagRow{Name: strings.TrimSpace(*input.Name)}
	if input.Unicode != nil {
		row.Unicode = *input.Unicode
	}
	if err := r.db.WithContext(ctx).Table(table).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create %s entry: %w", table, err)
	}

	r.logger.Info("Created ", table, " entry with id ", row.ID)
	return row.ToDomain(), nil
}

func (r *gormContentRepository) UpdateTag(ctx context.Context, kind content.TagKind, id int64, input *content.TagInput) (*content.Tag, error) {
	_, model := models.TagTable(kind)

	values := map[string]interface{}{}
	if input.Name != nil {
		values["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Unicode != nil {
		values["unicode"] = *input.Unicode
	}
	if err := r.updateByID(ctx, model, string(kind), id, values); err != nil {
		return nil, err
	}

	r.logger.Info("Updated ", kind, " entry with id ", id)
	return r.getTag(ctx, kind, id)
}

func (r *gormContentRepository) DeleteTag(ctx context.Context, kind content.TagKind, id int64) error {
	_, model := models.TagTable(kind)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link interface{} = &models.UserHobbyModel{}
		column := "hobby_id"
		if kind == content.KindInterest {
			link, column = &models.UserInterestModel{}, "interest_id"
		}
		if err := tx.Where(column+" = ?", id).Delete(link).Error; err != nil {
			return fmt.Errorf("failed to delete user links: %w", err)
		}
		return deleteByID(tx, model, string(kind), id)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted ", kind, " entry with id ", id)
	return nil
}

func (r *gormContentRepository) ListLanguages(ctx context.Context) ([]*content.Language, error) {
	var modelList []models.LanguageModel
	if err := r.db.WithContext(ctx).Order("id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch languages: %w", err)
	}

	list := make([]*content.Language, len(modelList))
	for i := range modelList {
		list[i] = modelList[i].ToDomain()
	}
	return list, nil
}

func (r *gormContentRepository) CreateLanguage(ctx context.Context, input *content.LanguageInput) (*content.Language, error) {
	model := models.LanguageModel{Name: strings.TrimSpace(*input.Name)}
	if input.Code != nil {
		model.Code = *input.Code
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to create language: %w", err)
	}

	r.logger.Info("Created language with id ", model.ID)
	return model.ToDomain(), nil
}

func (r *gormContentRepository) UpdateLanguage(ctx context.Context, id int64, input *content.LanguageInput) (*content.Language, error) {
	values := map[string]interface{}{}
	if input.Name != nil {
		values["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Code != nil {
		values["code"] = *input.Code
	}
	if err := r.updateByID(ctx, &models.LanguageModel{}, "language", id, values); err != nil {
		return nil, err
	}

	var model models.LanguageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateNotFound(err, "language", id)
	}

	r.logger.Info("Updated language with id ", id)
	return model.ToDomain(), nil
}

func (r *gormContentRepository) DeleteLanguage(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("language_id = ?", id).Delete(&models.UserLanguageModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user languages: %w", err)
		}
		return deleteByID(tx, &models.LanguageModel{}, "language", id)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted language with id ", id)
	return nil
}

func (r *gormContentRepository) ListQuestions(ctx context.Context, query *content.QuestionQuery) ([]*content.Question, error) {
	tx := r.db.WithContext(ctx)
	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Active != nil {
		tx = tx.Where("is_active = ?", *query.Active)
	}

	var modelList []models.QuestionModel
	if err := tx.Order("display_order, id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}

	list := make([]*content.Question, len(modelList))
	for i := range modelList {
		list[i] = modelList[i].ToDomain()
	}
	return list, nil
}

func (r *gormContentRepository) MaxQuestionOrder(ctx context.Context) (int, error) {
	var maxOrder int
	if err := r.db.WithContext(ctx).Model(&models.QuestionModel{}).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch question order: %w", err)
	}
	return maxOrder, nil
}

func (r *gormContentRepository) CreateQuestion(ctx context.Context, question *content.Question) error {
	var model models.QuestionModel
	model.FromDomain(question)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	question.ID = model.ID
	question.CreatedAt = model.CreatedAt
	r.logger.Info("Created question with id ", model.ID)
	return nil
}

func (r *gormContentRepository) UpdateQuestion(ctx context.Context, id int64, input *content.QuestionInput) (*content.Question, error) {
	values := map[string]interface{}{}
	if input.QuestionText != nil {
		values["question_text"] = strings.TrimSpace(*input.QuestionText)
	}
	if input.Category != nil {
		values["category"] = *input.Category
	}
	if input.IsActive != nil {
		values["is_active"] = *input.IsActive
	}
	if input.DisplayOrder != nil {
		values["display_order"] = *input.DisplayOrder
	}
	if err := r.updateByID(ctx, &models.QuestionModel{}, "question", id, values); err != nil {
		return nil, err
	}

	var model models.QuestionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateNotFound(err, "question", id)
	}

	r.logger.Info("Updated question with id ", id)
	return model.ToDomain(), nil
}

func (r *gormContentRepository) DeleteQuestion(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.UserAnswerModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete answers: %w", err)
		}
		return deleteByID(tx, &models.QuestionModel{}, "question", id)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted question with id ", id)
	return nil
}

// updateByID applies values to one row; an empty update only checks existence.
func (r *gormContentRepository) updateByID(ctx context.Context, model interface{}, entity string, id int64, values map[string]interface{}) error {
	db := r.db.WithContext(ctx)
	if len(values) == 0 {
		found, err := exists(db, model, id)
		if err != nil {
			return fmt.Errorf("failed to fetch %s: %w", entity, err)
		}
		if !found {
			return notFound(entity, id)
		}
		return nil
	}

	result := db.Model(model).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(entity, id)
	}
	return nil
}

func deleteByID(tx *gorm.DB, model interface{}, entity string, id int64) error {
	result := tx.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(entity, id)
	}
	return nil
}
