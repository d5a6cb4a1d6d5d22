package store

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const heroKey = "sports-store-hero-image/test"

func TestHeroPreference_Load(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   entity.HeroVariant
	}{
		{name: "missing uses default", stored: nil, want: entity.HeroOptionA},
		{name: "known value", stored: ptr("option-c"), want: entity.HeroOptionC},
		{name: "unknown value uses default", stored: ptr("option-z"), want: entity.HeroOptionA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newFakeKV()
			if tt.stored != nil {
				kv.data[heroKey] = *tt.stored
			}

			h := NewHeroPreference(context.Background(), kv, heroKey, newDiscardLogger())
			assert.Equal(t, tt.want, h.Variant())
		})
	}
}

func TestHeroPreference_SetVariant(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	h := NewHeroPreference(ctx, kv, heroKey, newDiscardLogger())

	require.NoError(t, h.SetVariant(ctx, entity.HeroOptionB))
	assert.Equal(t, entity.HeroOptionB, h.Variant())
	assert.Equal(t, "option-b", kv.data[heroKey])

	assert.ErrorIs(t, h.SetVariant(ctx, "option-x"), ErrInvalidHeroVariant)

	kv.setFailing(true)
	assert.ErrorIs(t, h.SetVariant(ctx, entity.HeroOptionC), ErrPersistence)
	assert.Equal(t, entity.HeroOptionB, h.Variant())
}

func ptr[T any](v T) *T {
	return &v
}
