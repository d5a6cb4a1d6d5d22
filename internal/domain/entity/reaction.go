package entity

// ReactionState is a point-in-time copy of a visitor's liked and favorited product ids.
type ReactionState struct {
	LikedIDs     []string `json:"liked_ids"`
	FavoritedIDs []string `json:"favorited_ids"`
}

// ProductReaction describes the reaction flags for a single product.
type ProductReaction struct {
	ProductID string `json:"product_id"`
	Liked     bool   `json:"liked"`
	Favorited bool   `json:"favorited"`
}
