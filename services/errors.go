package services

import (
	"errors"

	"github.com/ColdCodePlay/FoodFusion/repository"
)

// Service-level error taxonomy. Controllers map these onto HTTP statuses;
// anything not matching is treated as an internal failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("invalid request")
)

// storeErr lifts storage lookups into the taxonomy.
func storeErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
