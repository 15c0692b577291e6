package hearts

// Rating tiers awarded at the end of a round.
const (
	RatingSweetStart = "Sweet Start!"
	RatingLoveMaster = "Love Master!"
	RatingUltimate   = "Ultimate Romantic!"
)

// Rate returns the tier name for a final score.
func Rate(score int) string {
	switch {
	case score > 100:
		return RatingUltimate
	case score > 50:
		return RatingLoveMaster
	default:
		return RatingSweetStart
	}
}

// Verdict is the end-of-round message.
func Verdict(score int) string {
	if score > 50 {
		return "Amazing! You collected so much love!"
	}
	return "Sweet! Every heart counts!"
}
