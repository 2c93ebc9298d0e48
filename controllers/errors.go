package controllers

import (
	"errors"

	"github.com/ColdCodePlay/FoodFusion/pkg/resp"
	"github.com/ColdCodePlay/FoodFusion/services"

	"github.com/gin-gonic/gin"
)

// fail maps the service error taxonomy onto HTTP statuses; anything
// unrecognized is an internal failure.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
