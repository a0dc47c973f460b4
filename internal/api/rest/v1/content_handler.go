package v1

import (
	"net/http"

	"github.com/gauravkdm/admin-portal/internal/domain/content"
	"github.com/gin-gonic/gin"
)

const contentPath = "/content"

// ContentHandler defines the interface for the content taxonomies
type ContentHandler interface {
	ListCategories(ctx *gin.Context)
	CreateCategory(ctx *gin.Context)
	UpdateCategory(ctx *gin.Context)
	DeleteCategory(ctx *gin.Context)

	ListTags(ctx *gin.Context)
	CreateTag(ctx *gin.Context)
	UpdateTag(ctx *gin.Context)
	DeleteTag(ctx *gin.Context)

	ListLanguages(ctx *gin.Context)
	CreateLanguage(ctx *gin.Context)
	UpdateLanguage(ctx *gin.Context)
	DeleteLanguage(ctx *gin.Context)

	ListQuestions(ctx *gin.Context)
	CreateQuestion(ctx *gin.Context)
	UpdateQuestion(ctx *gin.Context)
	DeleteQuestion(ctx *gin.Context)
}

type contentHandler struct {
	contentService content.ContentService
	invalidator    Invalidator
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService content.ContentService, invalidator Invalidator) ContentHandler {
	return &contentHandler{
		contentService: contentService,
		invalidator:    invalidator,
	}
}

// ListCategories handles the GET request to list event categories
// @Summary List categories
// @Tags Content
// @Produce json
// @Success 200 {object} CollectionResponse
// @Router /content/categories [get]
func (handler *contentHandler) ListCategories(ctx *gin.Context) {
	items, err := handler.contentService.ListCategories(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CollectionResponse{Data: nonNil(items)})
}

// CreateCategory handles the POST request creating a category
// @Summary Create a category
// @Tags Content
// @Accept json
// @Produce json
// @Param requestBody body content.CategoryInput true "Category"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /content/categories [post]
func (handler *contentHandler) CreateCategory(ctx *gin.Context) {
	var input content.CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	category, err := handler.contentService.CreateCategory(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusCreated, DataResponse{Data: category})
}

// UpdateCategory handles the PUT request on a category
// @Summary Update a category
// @Tags Content
// @Router /content/categories/{id} [put]
func (handler *contentHandler) UpdateCategory(ctx *gin.Context) {
	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var input content.CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	category, err := handler.contentService.UpdateCategory(ctx, id, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, DataResponse{Data: category})
}

// DeleteCategory handles the DELETE request on a category
// @Summary Delete a category
// @Tags Content
// @Router /content/categories/{id} [delete]
func (handler *contentHandler) DeleteCategory(ctx *gin.Context) {
	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.contentService.DeleteCategory(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}

// ListTags handles the GET request to list hobbies or interests
// @Summary List hobbies or interests
// @Tags Content
// @Param kind path string true "hobbies or interests"
// @Router /content/{kind} [get]
func (handler *contentHandler) ListTags(ctx *gin.Context) {
	kind, err := content.ParseTagKind(ctx.Param("kind"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	items, err := handler.contentService.ListTags(ctx, kind)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CollectionResponse{Data: nonNil(items)})
}

// CreateTag handles the POST request creating a hobby or interest
// @Summary Create a hobby or interest
// @Tags Content
// @Param kind path string true "hobbies or interests"
// @Router /content/{kind} [post]
func (handler *contentHandler) CreateTag(ctx *gin.Context) {
	kind, err := content.ParseTagKind(ctx.Param("kind"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	var input content.TagInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	tag, err := handler.contentService.CreateTag(ctx, kind, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusCreated, DataResponse{Data: tag})
}

// UpdateTag handles the PUT request on a hobby or interest
// @Router /content/{kind}/{id} [put]
func (handler *contentHandler) UpdateTag(ctx *gin.Context) {
	kind, err := content.ParseTagKind(ctx.Param("kind"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var input content.TagInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	tag, err := handler.contentService.UpdateTag(ctx, kind, id, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, DataResponse{Data: tag})
}

// DeleteTag handles the DELETE request on a hobby or interest
// @Router /content/{kind}/{id} [delete]
func (handler *contentHandler) DeleteTag(ctx *gin.Context) {
	kind, err := content.ParseTagKind(ctx.Param("kind"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.contentService.DeleteTag(ctx, kind, id); err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, MessageResponse{Message: "Deleted successfully"})
}

// ListLanguages handles the GET request to list languages
// @Router /content/languages [get]
func (handler *contentHandler) ListLanguages(ctx *gin.Context) {
	items, err := handler.contentService.ListLanguages(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CollectionResponse{Data: nonNil(items)})
}

// CreateLanguage handles the POST request creating a language
// @Router /content/languages [post]
func (handler *contentHandler) CreateLanguage(ctx *gin.Context) {
	var input content.LanguageInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	language, err := handler.contentService.CreateLanguage(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusCreated, DataResponse{Data: language})
}

// UpdateLanguage handles the PUT request on a language
// @Router /content/languages/{id} [put]
func (handler *contentHandler) UpdateLanguage(ctx *gin.Context) {
	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var input content.LanguageInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	language, err := handler.contentService.UpdateLanguage(ctx, id, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, DataResponse{Data: language})
}

// DeleteLanguage handles the DELETE request on a language
// @Router /content/languages/{id} [delete]
func (handler *contentHandler) DeleteLanguage(ctx *gin.Context) {
	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.contentService.DeleteLanguage(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, MessageResponse{Message: "Language deleted successfully"})
}

// ListQuestions handles the GET request to list profile questions ordered by display order
// @Summary List questions
// @Tags Content
// @Param category query string false "Category"
// @Param active query bool false "Active filter"
// @Router /content/questions [get]
func (handler *contentHandler) ListQuestions(ctx *gin.Context) {
	active, err := optionalBool(ctx, "active")
	if err != nil {
		respondError(ctx, err)
		return
	}

	items, err := handler.contentService.ListQuestions(ctx, &content.QuestionQuery{
		Category: ctx.Query("category"),
		Active:   active,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CollectionResponse{Data: nonNil(items)})
}

// CreateQuestion handles the POST request creating a question
// @Router /content/questions [post]
func (handler *contentHandler) CreateQuestion(ctx *gin.Context) {
	var input content.QuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	question, err := handler.contentService.CreateQuestion(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusCreated, DataResponse{Data: question})
}

// UpdateQuestion handles the PUT request on a question
// @Router /content/questions/{id} [put]
func (handler *contentHandler) UpdateQuestion(ctx *gin.Context) {
	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var input content.QuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	question, err := handler.contentService.UpdateQuestion(ctx, id, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, DataResponse{Data: question})
}

// DeleteQuestion handles the DELETE request on a question
// @Router /content/questions/{id} [delete]
func (handler *contentHandler) DeleteQuestion(ctx *gin.Context) {
	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.contentService.DeleteQuestion(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, MessageResponse{Message: "Question deleted successfully"})
}

func (handler *contentHandler) invalidate(ctx *gin.Context) {
	handler.invalidator.Invalidate(ctx, contentPath)
}
