package store

import "github.com/google/uuid"

// KeySpace derives storage keys for each persisted concern, scoped to a session.
type KeySpace struct {
	prefix string
}

// NewKeySpace returns a key space rooted at prefix, e.g. "sports-store".
func NewKeySpace(prefix string) KeySpace {
	return KeySpace{prefix: prefix}
}

// Reactions is the key holding the like/favorite sets.
func (k KeySpace) Reactions(sessionID uuid.UUID) string {
	return k.prefix + "-reactions/" + sessionID.String()
}

// UserProducts is the key holding the visitor-added products.
func (k KeySpace) UserProducts(sessionID uuid.UUID) string {
	return k.prefix + "-user-products/" + sessionID.String()
}

// HeroImage is the key holding the hero image preference.
func (k KeySpace) HeroImage(sessionID uuid.UUID) string {
	return k.prefix + "-hero-image/" + sessionID.String()
}
