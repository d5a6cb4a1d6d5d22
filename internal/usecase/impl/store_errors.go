package impl

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/store"

	"github.com/pkg/errors"
)

// mapStoreError translates session store failures into application errors.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrPersistence):
		return errors.Wrap(domainerrors.ErrStorageUnavailable, err.Error())
	case errors.Is(err, store.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidTransition):
		return errors.Wrap(domainerrors.ErrInvalidTransition, err.Error())
	case errors.Is(err, store.ErrUnknownAction):
		return errors.Wrap(domainerrors.ErrUnknownAction, err.Error())
	case errors.Is(err, store.ErrInvalidHeroVariant):
		return errors.Wrap(domainerrors.ErrInvalidHeroVariant, err.Error())
	case errors.Is(err, store.ErrIDExhausted):
		return errors.Wrap(domainerrors.ErrInternalError, err.Error())
	default:
		return err
	}
}
