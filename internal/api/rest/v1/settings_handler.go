package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
	"github.com/craneintel/crane-intelligence/internal/domain/settings"

	"github.com/gin-gonic/gin"
)

// SettingsHandler defines the interface for platform settings
type SettingsHandler interface {
	List(ctx *gin.Context)
	Set(ctx *gin.Context)
}

type settingsHandler struct {
	settingsService settings.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
	}
}

// List fetches every setting ordered by key
func (handler *settingsHandler) List(ctx *gin.Context) {
	list, err := handler.settingsService.List(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]stub.SettingResponse, 0, len(list))
	for _, setting := range list {
		response = append(response, newSettingResponse(setting))
	}
	ctx.JSON(http.StatusOK, response)
}

// Set stores the value of the setting named in the path
func (handler *settingsHandler) Set(ctx *gin.Context) {
	var request stub.SettingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid setting value")
		return
	}

	updatedBy := ""
	if principal := currentPrincipal(ctx); principal != nil {
		updatedBy = principal.Email
	}

	setting, err := handler.settingsService.Set(ctx, ctx.Param("key"), request.Value, updatedBy)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSettingResponse(setting))
}
