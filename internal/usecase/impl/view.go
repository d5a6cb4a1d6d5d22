package impl

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"
)

func viewResult(publicBaseURL string, state entity.ViewState) *usecase.ViewResult {
	return &usecase.ViewResult{
		ViewState: state,
		DeepLink:  store.DeepLink(publicBaseURL, state),
	}
}
