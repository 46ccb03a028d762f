package recommend

// Weights holds every scoring constant of the recommendation engine so the
// policy can be tuned and tested independently of the ranking algorithm.
// All contributions are additive; a zero weight disables its signal.
type Weights struct {
	// RatingFactor multiplies the tool's catalog rating (base quality).
	RatingFactor float64 `json:"ratingFactor"`

	// ReviewsFactor multiplies ln(reviews+1) (base quality).
	ReviewsFactor float64 `json:"reviewsFactor"`

	// FavoriteCategory is the bonus for tools in a user's favorite category.
	FavoriteCategory float64 `json:"favoriteCategory"`

	// RatedCategory is the bonus for tools sharing a category with a tool
	// the user rated at or above HighRatingThreshold.
	RatedCategory float64 `json:"ratedCategory"`

	// SearchMatch is the bonus for tools matching a past search query.
	SearchMatch float64 `json:"searchMatch"`

	// Trending is the bonus for tools flagged popular.
	Trending float64 `json:"trending"`

	// Verified is the bonus for verified tools.
	Verified float64 `json:"verified"`

	// FreePricing is the silent bonus for Free or Freemium tools.
	FreePricing float64 `json:"freePricing"`

	// HighRatingThreshold is the minimum user rating that marks a tool's
	// category as liked for the RatedCategory signal.
	HighRatingThreshold float64 `json:"highRatingThreshold"`

	// RecentViewWindow is how many of the most recently viewed tools are
	// excluded from recommendations.
	RecentViewWindow int `json:"recentViewWindow"`
}

// DefaultWeights returns the production scoring policy.
func DefaultWeights() Weights {
	return Weights{
		RatingFactor:        10,
		ReviewsFactor:       2,
		FavoriteCategory:    30,
		RatedCategory:       20,
		SearchMatch:         15,
		Trending:            10,
		Verified:            5,
		FreePricing:         8,
		HighRatingThreshold: 4,
		RecentViewWindow:    10,
	}
}

// SimilarityWeights holds the scoring constants of the similarity engine.
type SimilarityWeights struct {
	// SameCategory is the bonus for sharing the reference tool's category.
	SameCategory float64 `json:"sameCategory"`

	// SharedTag is the bonus per tag shared with the reference tool (no cap).
	SharedTag float64 `json:"sharedTag"`

	// SamePricing is the bonus for the same pricing tier.
	SamePricing float64 `json:"samePricing"`

	// RatingBandTight is the bonus when |rating - reference| <= TightBand.
	RatingBandTight float64 `json:"ratingBandTight"`

	// RatingBandLoose is the bonus when the tight band missed but
	// |rating - reference| <= LooseBand.
	RatingBandLoose float64 `json:"ratingBandLoose"`

	// Popular is the bonus for candidates flagged popular.
	Popular float64 `json:"popular"`

	// TightBand and LooseBand are the rating-proximity cutoffs.
	TightBand float64 `json:"tightBand"`
	LooseBand float64 `json:"looseBand"`
}

// DefaultSimilarityWeights returns the production similarity policy.
func DefaultSimilarityWeights() SimilarityWeights {
	return SimilarityWeights{
		SameCategory:    50,
		SharedTag:       10,
		SamePricing:     15,
		RatingBandTight: 20,
		RatingBandLoose: 10,
		Popular:         10,
		TightBand:       0.5,
		LooseBand:       1.0,
	}
}
