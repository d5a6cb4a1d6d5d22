package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// reactionDocument is the persisted shape of the reaction sets.
type reactionDocument struct {
	Likes     []string `json:"likes"`
	Favorites []string `json:"favorites"`
}

type idSet map[string]struct{}

func newIDSet(ids []string) idSet {
	set := make(idSet, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}

	return set
}

func (s idSet) sorted() []string {
	ids := slices.Sorted(maps.Keys(s))
	if ids == nil {
		return []string{}
	}

	return ids
}

func (s idSet) toggled(id string) idSet {
	next := maps.Clone(s)
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}

	return next
}

// ReactionStore keeps the liked and favorited product ids of a visitor and persists
// both sets on every change.
type ReactionStore struct {
	kv     repository.KeyValueStore
	key    string
	logger *slog.Logger

	likes     idSet
	favorites idSet
}

// NewReactionStore loads previously persisted reactions. Missing or damaged data loads as empty sets.
func NewReactionStore(ctx context.Context, kv repository.KeyValueStore, key string, logger *slog.Logger) *ReactionStore {
	s := &ReactionStore{
		kv:        kv,
		key:       key,
		logger:    logger,
		likes:     idSet{},
		favorites: idSet{},
	}
	s.load(ctx)

	return s
}

func (s *ReactionStore) load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.logger.Warn("Failed to read reactions, starting empty",
				slog.String("key", s.key),
				slog.Any("error", err),
			)
		}

		return
	}

	var doc reactionDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.logger.Warn("Discarding malformed reactions",
			slog.String("key", s.key),
			slog.Any("error", err),
		)

		return
	}

	s.likes = newIDSet(doc.Likes)
	s.favorites = newIDSet(doc.Favorites)
}

// ToggleLike flips the like flag of productID and returns the new value.
func (s *ReactionStore) ToggleLike(ctx context.Context, productID string) (bool, error) {
	next := s.likes.toggled(productID)
	if err := s.persist(ctx, next, s.favorites); err != nil {
		return s.IsLiked(productID), err
	}
	s.likes = next

	return s.IsLiked(productID), nil
}

// ToggleFavorite flips the favorite flag of productID and returns the new value.
func (s *ReactionStore) ToggleFavorite(ctx context.Context, productID string) (bool, error) {
	next := s.favorites.toggled(productID)
	if err := s.persist(ctx, s.likes, next); err != nil {
		return s.IsFavorited(productID), err
	}
	s.favorites = next

	return s.IsFavorited(productID), nil
}

// IsLiked reports whether productID is liked.
func (s *ReactionStore) IsLiked(productID string) bool {
	_, ok := s.likes[productID]

	return ok
}

// IsFavorited reports whether productID is favorited.
func (s *ReactionStore) IsFavorited(productID string) bool {
	_, ok := s.favorites[productID]

	return ok
}

// FavoriteIDs returns the favorited ids in sorted order.
func (s *ReactionStore) FavoriteIDs() []string {
	return s.favorites.sorted()
}

// LikedIDs returns the liked ids in sorted order.
func (s *ReactionStore) LikedIDs() []string {
	return s.likes.sorted()
}

// Snapshot returns a copy of both sets.
func (s *ReactionStore) Snapshot() entity.ReactionState {
	return entity.ReactionState{
		LikedIDs:     s.LikedIDs(),
		FavoritedIDs: s.FavoriteIDs(),
	}
}

// Reaction returns both flags for a product.
func (s *ReactionStore) Reaction(productID string) entity.ProductReaction {
	return entity.ProductReaction{
		ProductID: productID,
		Liked:     s.IsLiked(productID),
		Favorited: s.IsFavorited(productID),
	}
}

func (s *ReactionStore) persist(ctx context.Context, likes, favorites idSet) error {
	data, err := json.Marshal(reactionDocument{
		Likes:     likes.sorted(),
		Favorites: favorites.sorted(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("%w: save reactions: %w", ErrPersistence, err)
	}

	return nil
}
