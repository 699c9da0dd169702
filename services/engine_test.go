package services

import (
	"context"
	"testing"

	"swipe-lab/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEngine_MaleProfileNeverReachesTheFemaleChannel(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, gomock.NewController(t), 10)

	h.register(t, "A", domain.Male, domain.FilterAll, "Rome")
	h.register(t, "B", domain.Female, domain.FilterAll, "Rome")
	h.register(t, "C", domain.Male, domain.FilterAll, "Rome")

	depths, err := h.engine.Depths(context.Background())
	req.NoError(err)
	req.Equal(map[string]int{
		"profiles_male":   2,
		"profiles_female": 1,
		"profiles_all":    3,
	}, depths)

	card, err := h.engine.Next(context.Background(), "V", domain.FilterFemale, "")
	req.NoError(err)
	req.Equal("B", card.Profile.ID)
}
