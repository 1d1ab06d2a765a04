package v1

import (
	"fmt"
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/media"

	"github.com/gin-gonic/gin"
)

// MediaHandler defines the interface for file uploads and their metadata
type MediaHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type mediaHandler struct {
	uploadService media.UploadService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(uploadService media.UploadService) MediaHandler {
	return &mediaHandler{
		uploadService: uploadService,
	}
}

// Upload stores the files of the "files" field under the category of the route
func (handler *mediaHandler) Upload(ctx *gin.Context) {
	category := ctx.Param("category")
	if !media.ValidCategory(category) {
		respondError(ctx, fmt.Errorf("%w: unknown upload category %q", common.ErrNotFound, category))
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondBadRequest(ctx, "invalid form data")
		return
	}

	uploadedBy := ""
	if principal := currentPrincipal(ctx); principal != nil {
		uploadedBy = principal.Email
	}

	objects, err := handler.uploadService.Upload(ctx, category, form, uploadedBy)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]stub.MediaObjectResponse, 0, len(objects))
	for _, object := range objects {
		response = append(response, stub.MediaObjectResponse{
			ID:          object.ID,
			FileName:    object.FileName,
			URL:         object.URL,
			Size:        object.Size,
			ContentType: object.ContentType,
			CreatedAt:   object.CreatedAt,
		})
	}
	ctx.JSON(http.StatusCreated, response)
}

// List fetches uploaded object metadata optionally filtered by category and file name
func (handler *mediaHandler) List(ctx *gin.Context) {
	query := media.NewObjectQuery()
	if err := bindPage(ctx, &query.Page); err != nil {
		respondError(ctx, err)
		return
	}
	query.Category = ctx.Query("category")
	query.FileName = ctx.Query("file_name")

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	objects, total, err := handler.uploadService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listResponse(objects, total, query.Page, newMediaObjectResponse))
}

// GetByID fetches uploaded object metadata by ID
func (handler *mediaHandler) GetByID(ctx *gin.Context) {
	object, err := handler.uploadService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMediaObjectResponse(object))
}

// DeleteByID removes the file from storage, then its metadata
func (handler *mediaHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.uploadService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
