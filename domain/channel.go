package domain

import "strings"

const (
	sharedChannelPrefix = "profiles_"
	inboxChannelPrefix  = "inbox_"
)

// SharedChannel returns the broadcast channel browsed with the given filter.
func SharedChannel(filter GenderFilter) string {
	return sharedChannelPrefix + string(filter)
}

// InboxChannel returns the private channel of a user.
func InboxChannel(userID string) string {
	return inboxChannelPrefix + userID
}

// SharedChannels lists every broadcast channel, in a stable order.
func SharedChannels() []string {
	return []string{
		SharedChannel(FilterMale),
		SharedChannel(FilterFemale),
		SharedChannel(FilterAll),
	}
}

// PublishTargets returns the shared channels a profile of gender g is pushed into.
// Anything that is not male lands in the female channel, and everything lands in "all".
func PublishTargets(g Gender) []string {
	own := SharedChannel(FilterFemale)
	if g == Male {
		own = SharedChannel(FilterMale)
	}
	return []string{own, SharedChannel(FilterAll)}
}

func IsInboxChannel(name string) bool {
	return strings.HasPrefix(name, inboxChannelPrefix)
}
