package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
	"github.com/nimbusworks/intranet_portal_app/internal/middleware"
)

// assetHandler handles HTTP requests for the asset register.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{assetService: as}
}

// RegisterAssetRoutes registers routes related to assets.
func RegisterAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.POST("", h.createAsset)
		assets.GET("/:id", h.getAsset)
		assets.PUT("/:id", h.updateAsset)
		assets.DELETE("/:id", h.deleteAsset)
		assets.POST("/:id/restore", h.restoreAsset)
		assets.DELETE("/:id/purge", h.purgeAsset)
	}
}

// listAssets godoc
// @Summary List assets
// @Description Retrieves all live assets visible to the caller
// @Tags assets
// @Produce json
// @Success 200 {object} dto.AssetListResponse
// @Failure 502 {object} map[string]string "Document store unavailable"
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	assets, err := h.assetService.ListAssets(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "list assets")
		return
	}
	c.JSON(http.StatusOK, dto.AssetListResponse{Assets: assets})
}

// getAsset godoc
// @Summary Get an asset by id
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} domain.Asset
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	asset, err := h.assetService.GetAssetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get asset")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// createAsset godoc
// @Summary Register a new asset
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} domain.Asset
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	asset, err := h.assetService.CreateAsset(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "create asset")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Asset created",
		slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, asset)
}

// updateAsset godoc
// @Summary Update an asset
// @Description Applies a partial update; omitted fields are untouched
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param asset body dto.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} domain.Asset
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	asset, err := h.assetService.UpdateAsset(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "update asset")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// deleteAsset godoc
// @Summary Soft-delete an asset
// @Tags assets
// @Param id path string true "Asset ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.assetService.DeleteAsset(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "delete asset")
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreAsset godoc
// @Summary Restore a soft-deleted asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} domain.Asset
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{id}/restore [post]
func (h *assetHandler) restoreAsset(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	asset, err := h.assetService.RestoreAsset(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "restore asset")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// purgeAsset godoc
// @Summary Permanently delete an asset
// @Description Irreversibly removes the asset. Admin only.
// @Tags assets
// @Param id path string true "Asset ID"
// @Success 204 "Purged"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /assets/{id}/purge [delete]
func (h *assetHandler) purgeAsset(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.assetService.PurgeAsset(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "purge asset")
		return
	}
	c.Status(http.StatusNoContent)
}
