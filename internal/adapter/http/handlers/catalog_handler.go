package handlers

import (
	"context"
	"errors"
	"net/http"

	request "carport_configurator/internal/adapter/http/dto/request"
	response "carport_configurator/internal/adapter/http/dto/response"
	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase"
	"carport_configurator/internal/usecase/interfaces"
	"carport_configurator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// CatalogHandler exposes active catalog rows to the wizard and full CRUD to
// the back-office.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListActive godoc
// @Summary      List active catalog entries
// @Tags         catalog
// @Produce      json
// @Param        line  path  string  true  "Product line (wood|iron)"
// @Param        kind  path  string  true  "Catalog kind, e.g. models or structure_types"
// @Success      200  {array}   response.CatalogEntryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /lines/{line}/catalog/{kind} [get]
func (h *CatalogHandler) ListActive(c *gin.Context) {
	ns, kind, ok := catalogParams(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListActive(c.Request.Context(), ns, kind)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntities(items))
}

func (h *CatalogHandler) List(c *gin.Context) {
	ns, kind, ok := catalogParams(c)
	if !ok {
		return
	}
	items, err := h.usecase.List(c.Request.Context(), ns, kind)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntities(items))
}

func (h *CatalogHandler) Get(c *gin.Context) {
	ns, kind, ok := catalogParams(c)
	if !ok {
		return
	}
	e, err := h.usecase.Get(c.Request.Context(), ns, kind, c.Param(ParamID))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntity(e))
}

func (h *CatalogHandler) Create(c *gin.Context) {
	h.write(c, http.StatusCreated, "", h.usecase.Create)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	h.write(c, http.StatusOK, c.Param(ParamID), h.usecase.Update)
}

type catalogWrite func(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error)

func (h *CatalogHandler) write(c *gin.Context, status int, pathID string, save catalogWrite) {
	ns, kind, ok := catalogParams(c)
	if !ok {
		return
	}
	var payload request.CatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	entry, err := payload.ToEntity(kind, pathID)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := save(c.Request.Context(), ns, entry)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.FromCatalogEntity(saved))
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	ns, kind, ok := catalogParams(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), ns, kind, c.Param(ParamID)); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func catalogParams(c *gin.Context) (entities.Namespace, entities.EntityKind, bool) {
	ns, ok := namespaceParam(c)
	if !ok {
		return entities.Namespace{}, "", false
	}
	kind, ok := kindParam(c)
	return ns, kind, ok
}

func mapCatalogError(err error) *pkg.AppError {
	if appErr, ok := userInputError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, entities.ErrUnknownProductLine):
		return errUnknownProductLine
	case errors.Is(err, entities.ErrUnknownEntityKind):
		return errUnknownCatalogKind
	case errors.Is(err, usecase.ErrCatalogEntryNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Catalog entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogEntryExists):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_EXISTS", "Catalog entry already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCatalogEntryInUse):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_IN_USE", "Catalog entry is referenced by configurations, deactivate it instead", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return errStorageUnavailable
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
