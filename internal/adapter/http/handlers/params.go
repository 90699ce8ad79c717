package handlers

import (
	"errors"
	"net/http"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase"
	"carport_configurator/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ParamLine = "line"
	ParamKind = "kind"
	ParamID   = "id"

	HeaderIdempotencyKey = "Idempotency-Key"
)

var (
	errUnknownProductLine = pkg.NewDomainErrorSimple("UNKNOWN_PRODUCT_LINE", "Unknown product line", http.StatusNotFound)
	errUnknownCatalogKind = pkg.NewDomainErrorSimple("UNKNOWN_CATALOG_KIND", "Unknown catalog kind", http.StatusNotFound)
	errStorageUnavailable = pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Service temporarily unavailable, please try again", http.StatusServiceUnavailable)
)

// namespaceParam resolves the :line path parameter, writing a 404 when it
// names no product line.
func namespaceParam(c *gin.Context) (entities.Namespace, bool) {
	line, err := entities.ParseProductLine(c.Param(ParamLine))
	if err == nil {
		var ns entities.Namespace
		if ns, err = entities.ResolveNamespace(line); err == nil {
			return ns, true
		}
	}
	abortWith(c, errUnknownProductLine)
	return entities.Namespace{}, false
}

func kindParam(c *gin.Context) (entities.EntityKind, bool) {
	kind, err := entities.ParseEntityKind(c.Param(ParamKind))
	if err != nil {
		abortWith(c, errUnknownCatalogKind)
		return "", false
	}
	return kind, true
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func violationDetails(v []entities.FieldViolation) []pkg.ErrorDetail {
	out := make([]pkg.ErrorDetail, 0, len(v))
	for _, x := range v {
		out = append(out, pkg.ErrorDetail{Field: x.Field, Reason: x.Reason})
	}
	return out
}

// userInputError maps the field-attributed use case errors shared by every
// handler. ok is false when err is not one of them.
func userInputError(err error) (appErr *pkg.AppError, ok bool) {
	var ve *usecase.ValidationError
	var se *usecase.SelectionError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Configuration is not valid", http.StatusUnprocessableEntity).
			WithDetails(violationDetails(ve.Violations)...), true
	case errors.As(err, &se):
		return pkg.NewDomainErrorSimple("INVALID_SELECTION", "Selection is not available", http.StatusUnprocessableEntity).
			WithDetails(violationDetails([]entities.FieldViolation{se.Violation()})...), true
	}
	return nil, false
}
