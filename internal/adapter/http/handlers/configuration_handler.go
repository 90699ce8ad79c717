package handlers

import (
	"errors"
	"net/http"
	"time"

	request "carport_configurator/internal/adapter/http/dto/request"
	response "carport_configurator/internal/adapter/http/dto/response"
	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase"
	"carport_configurator/internal/usecase/interfaces"
	"carport_configurator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidConfigurationPayload = pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", "Invalid configuration payload", http.StatusBadRequest)
	errInvalidListQuery            = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid list filters", http.StatusBadRequest)
)

// ConfigurationHandler serves the wizard (quote, submit) and the back-office
// configuration endpoints of both product lines.
type ConfigurationHandler struct {
	usecase usecase.IConfigurationUseCase
}

func NewConfigurationHandler(uc usecase.IConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{usecase: uc}
}

// Quote godoc
// @Summary      Preview a configuration
// @Description  Replays the wizard selection and returns completeness, step violations and the price breakdown.
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        line     path  string                         true  "Product line (wood|iron)"
// @Param        payload  body  request.ConfigurationRequest  true  "Wizard state"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /lines/{line}/configurations/quote [post]
func (h *ConfigurationHandler) Quote(c *gin.Context) {
	ns, ok := namespaceParam(c)
	if !ok {
		return
	}
	var payload request.ConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Quote(c.Request.Context(), ns, payload.ToSubmission(""))
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(result))
}

// Submit godoc
// @Summary      Submit a configuration
// @Description  Validates the full wizard state, prices it server side and stores it as a pending quote request.
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        line             path    string                         true   "Product line (wood|iron)"
// @Param        Idempotency-Key  header  string                         false  "Retries with the same key return the first result"
// @Param        payload          body    request.ConfigurationRequest  true   "Wizard state"
// @Success      201  {object}  response.SubmissionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /lines/{line}/configurations [post]
func (h *ConfigurationHandler) Submit(c *gin.Context) {
	ns, ok := namespaceParam(c)
	if !ok {
		return
	}
	var payload request.ConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), ns, payload.ToSubmission(c.GetHeader(HeaderIdempotencyKey)))
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmission(created))
}

func (h *ConfigurationHandler) List(c *gin.Context) {
	ns, ok := namespaceParam(c)
	if !ok {
		return
	}
	var q request.ListConfigurationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}
	filters, err := listFilters(q)
	if err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	items, err := h.usecase.List(c.Request.Context(), ns, filters)
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConfigurations(items))
}

func listFilters(q request.ListConfigurationsQuery) (entities.ConfigurationFilters, error) {
	f := entities.ConfigurationFilters{Limit: q.Limit}
	if q.Status != "" {
		s, err := entities.ParseConfigurationStatus(q.Status)
		if err != nil {
			return f, err
		}
		f.Status = s
	}
	var err error
	if q.Since != "" {
		if f.Since, err = time.Parse(time.RFC3339, q.Since); err != nil {
			return f, err
		}
	}
	if q.Until != "" {
		if f.Until, err = time.Parse(time.RFC3339, q.Until); err != nil {
			return f, err
		}
	}
	return f, nil
}

func (h *ConfigurationHandler) Get(c *gin.Context) {
	ns, ok := namespaceParam(c)
	if !ok {
		return
	}
	cfg, err := h.usecase.GetByID(c.Request.Context(), ns, c.Param(ParamID))
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConfiguration(cfg))
}

func (h *ConfigurationHandler) Delete(c *gin.Context) {
	ns, ok := namespaceParam(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), ns, c.Param(ParamID)); err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ConfigurationHandler) UpdateStatus(c *gin.Context) {
	ns, ok := namespaceParam(c)
	if !ok {
		return
	}
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	status, err := entities.ParseConfigurationStatus(payload.Status)
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), ns, c.Param(ParamID), status)
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConfiguration(updated))
}

func mapConfigurationError(err error) *pkg.AppError {
	if appErr, ok := userInputError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, entities.ErrUnknownProductLine):
		return errUnknownProductLine
	case errors.Is(err, usecase.ErrInvalidConfigurationID), errors.Is(err, entities.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigurationNotFound):
		return pkg.NewDomainErrorSimple("CONFIGURATION_NOT_FOUND", "Configuration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSelectionUnavailable):
		return pkg.NewDomainErrorSimple("SELECTION_UNAVAILABLE", "Selection no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusChanged):
		return pkg.NewDomainErrorSimple("STATUS_CHANGED", "Configuration status changed, reload and retry", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return errStorageUnavailable
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
