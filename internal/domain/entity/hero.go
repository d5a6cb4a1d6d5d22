package entity

// HeroVariant selects one of the landing page hero images.
type HeroVariant string

const (
	HeroOptionA HeroVariant = "option-a"
	HeroOptionB HeroVariant = "option-b"
	HeroOptionC HeroVariant = "option-c"

	DefaultHeroVariant = HeroOptionA
)

// IsValid reports whether v is a known hero variant.
func (v HeroVariant) IsValid() bool {
	switch v {
	case HeroOptionA, HeroOptionB, HeroOptionC:
		return true
	default:
		return false
	}
}
