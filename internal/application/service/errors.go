package service

import (
	"errors"
	"net/http"

	"github.com/chatchaiw/apparel-api/internal/domain/pricing"
	"github.com/chatchaiw/apparel-api/pkg/apperror"
)

// toAppError maps pricing engine rejections onto HTTP-aware errors. An
// oversize violation fails the whole order as unprocessable input.
func toAppError(err error) error {
	var oversizeErr *pricing.OversizeCategoryError
	if errors.As(err, &oversizeErr) {
		return apperror.NewAppError(http.StatusUnprocessableEntity, oversizeErr.Error())
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewBadRequestError(err.Error())
}
