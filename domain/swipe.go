package domain

import "time"

type SwipeDecision struct {
	From  string
	To    string
	Liked bool
	At    time.Time
}

// SwipeRecord is what the ledger observed while recording a decision in one transaction.
type SwipeRecord struct {
	Previous   *SwipeDecision
	Reciprocal *SwipeDecision
	// Mutual is true when both directions are liked after the write.
	Mutual bool
	// PendingNotification is true when the pair is matched and nobody was told yet.
	PendingNotification bool
}

type MatchOutcome int

const (
	OutcomeNoMatch MatchOutcome = iota
	OutcomeMutualMatch
	OutcomeAlreadyMatched
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomeMutualMatch:
		return "mutual-match"
	case OutcomeAlreadyMatched:
		return "already-matched"
	default:
		return "no-match"
	}
}

// PairKey orders two user ids so that (a, b) and (b, a) share a key.
func PairKey(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// MatchText is the notification sent to a user who just matched with partner.
func MatchText(partner Profile) string {
	return "It's a match with " + partner.Mention() + "! You can start chatting now."
}
