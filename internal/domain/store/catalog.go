package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxIDAttempts = 1000

// productRecord is the persisted shape of a visitor-added product.
type productRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
}

func (r productRecord) toEntity() entity.Product {
	return entity.Product{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Images:      slices.Clone(r.Images),
	}
}

func fromProductEntity(p entity.Product) productRecord {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return productRecord{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Images:      images,
	}
}

// IDGenerator produces candidate ids for visitor-added products.
type IDGenerator func() string

// NewUserProductID combines a time-ordered and a random component in a UUIDv7.
func NewUserProductID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return entity.UserProductIDPrefix + id.String()
}

// CatalogOption customises a CatalogStore.
type CatalogOption func(*CatalogStore)

// WithIDGenerator replaces the product id generator.
func WithIDGenerator(gen IDGenerator) CatalogOption {
	return func(s *CatalogStore) {
		s.newID = gen
	}
}

// CatalogStore merges the seeded catalog with products added by the visitor.
type CatalogStore struct {
	kv     repository.KeyValueStore
	key    string
	logger *slog.Logger
	newID  IDGenerator

	seeded       []entity.Product
	userProducts []entity.Product
	ids          map[string]struct{}
}

// NewCatalogStore loads previously added products and merges them after seed.
func NewCatalogStore(
	ctx context.Context,
	kv repository.KeyValueStore,
	key string,
	seed []entity.Product,
	logger *slog.Logger,
	opts ...CatalogOption,
) *CatalogStore {
	s := &CatalogStore{
		kv:     kv,
		key:    key,
		logger: logger,
		newID:  NewUserProductID,
		seeded: slices.Clone(seed),
		ids:    make(map[string]struct{}, len(seed)),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, p := range s.seeded {
		s.ids[p.ID] = struct{}{}
	}
	s.load(ctx)

	return s
}

func (s *CatalogStore) load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.logger.Warn("Failed to read user products, starting empty",
				slog.String("key", s.key),
				slog.Any("error", err),
			)
		}

		return
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("Discarding malformed user products",
			slog.String("key", s.key),
			slog.Any("error", err),
		)

		return
	}

	dropped := 0
	for _, entry := range entries {
		var rec productRecord
		if err := json.Unmarshal(entry, &rec); err != nil || !rec.valid() {
			dropped++

			continue
		}
		if _, dup := s.ids[rec.ID]; dup {
			dropped++

			continue
		}
		s.ids[rec.ID] = struct{}{}
		s.userProducts = append(s.userProducts, rec.toEntity())
	}

	if dropped > 0 {
		s.logger.Warn("Dropped unreadable user products",
			slog.String("key", s.key),
			slog.Int("dropped", dropped),
		)
	}
}

func (r productRecord) valid() bool {
	return r.ID != "" && r.Name != "" && !r.Price.IsNegative()
}

// ListProducts returns seeded products followed by visitor-added products.
func (s *CatalogStore) ListProducts() []entity.Product {
	out := make([]entity.Product, 0, len(s.seeded)+len(s.userProducts))
	out = append(out, s.seeded...)
	out = append(out, s.userProducts...)

	return out
}

// GetProduct looks a product up by id.
func (s *CatalogStore) GetProduct(productID string) (entity.Product, error) {
	for _, group := range [][]entity.Product{s.seeded, s.userProducts} {
		for _, p := range group {
			if p.ID == productID {
				return p, nil
			}
		}
	}

	return entity.Product{}, ErrProductNotFound
}

// HasProduct reports whether productID resolves in the merged catalog.
func (s *CatalogStore) HasProduct(productID string) bool {
	_, ok := s.ids[productID]

	return ok
}

// UserProducts returns only the visitor-added products.
func (s *CatalogStore) UserProducts() []entity.Product {
	return slices.Clone(s.userProducts)
}

// AddProduct assigns a collision-free id to draft and appends it to the visitor's products.
// The in-memory catalog changes only after the durable write succeeds.
func (s *CatalogStore) AddProduct(ctx context.Context, draft entity.ProductDraft) (entity.Product, error) {
	id, err := s.uniqueID()
	if err != nil {
		return entity.Product{}, err
	}

	product := entity.Product{
		ID:          id,
		Name:        draft.Name,
		Price:       draft.Price,
		Description: draft.Description,
		Images:      slices.Clone(draft.Images),
	}

	next := append(slices.Clone(s.userProducts), product)
	if err := s.persist(ctx, next); err != nil {
		return entity.Product{}, err
	}
	s.userProducts = next
	s.ids[id] = struct{}{}

	return product, nil
}

func (s *CatalogStore) uniqueID() (string, error) {
	for range maxIDAttempts {
		candidate := s.newID()
		if candidate != "" && !s.HasProduct(candidate) {
			return candidate, nil
		}
	}

	return "", ErrIDExhausted
}

func (s *CatalogStore) persist(ctx context.Context, products []entity.Product) error {
	records := make([]productRecord, 0, len(products))
	for _, p := range products {
		records = append(records, fromProductEntity(p))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("%w: save user products: %w", ErrPersistence, err)
	}

	return nil
}
