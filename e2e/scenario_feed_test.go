package e2e

import (
	"context"
	"testing"

	"swipe-lab/domain"

	"github.com/stretchr/testify/suite"
)

type feedSuite struct {
	BaseSuite
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, &feedSuite{})
}

func (s *feedSuite) TestBerlinPublishNextEmpty() {
	anna, ben := s.ID("anna"), s.ID("ben")

	s.Step("Step 1: both register in Berlin", func(ctx context.Context) {
		s.Register(ctx, anna, "anna", domain.Female, domain.FilterMale, "Berlin")
		s.Register(ctx, ben, "ben", domain.Male, domain.FilterFemale, "berlin")
	})

	s.Step("Step 2: ben gets anna once, whatever the city casing", func(ctx context.Context) {
		card, err := s.Stack.Engine.Next(ctx, ben, domain.FilterFemale, "BERLIN")
		s.Require().NoError(err)
		s.Require().NotNil(card)
		s.Equal(anna, card.Profile.ID)
		s.Equal("image/png", card.MimeType)
	})

	s.Step("Step 3: the feed is then empty", func(ctx context.Context) {
		card, err := s.Stack.Engine.Next(ctx, ben, domain.FilterFemale, "Berlin")
		s.Require().NoError(err)
		s.Nil(card)
	})

	s.Step("Step 4: republishing anna does not bring her back before a reset", func(ctx context.Context) {
		s.Register(ctx, anna, "anna", domain.Female, domain.FilterMale, "Berlin")
		card, err := s.Stack.Engine.Next(ctx, ben, domain.FilterFemale, "Berlin")
		s.Require().NoError(err)
		s.Nil(card)
	})

	s.Step("Step 5: after a reset a new snapshot is served again", func(ctx context.Context) {
		_, err := s.Stack.Engine.Reset(ctx, ben)
		s.Require().NoError(err)
		s.Register(ctx, anna, "anna", domain.Female, domain.FilterMale, "Berlin")
		card, err := s.Stack.Engine.Next(ctx, ben, domain.FilterFemale, "Berlin")
		s.Require().NoError(err)
		s.Require().NotNil(card)
		s.Equal(anna, card.Profile.ID)
	})
}

func (s *feedSuite) TestChannelPlacementAndCityFilter() {
	marc, lea := s.ID("marc"), s.ID("lea")

	s.Step("Step 1: a male profile lands in the male and all channels only", func(ctx context.Context) {
		s.Register(ctx, marc, "marc", domain.Male, domain.FilterAll, "Lyon")
		depths, err := s.Stack.Engine.Depths(ctx)
		s.Require().NoError(err)
		s.Equal(1, depths[domain.SharedChannel(domain.FilterMale)])
		s.Equal(1, depths[domain.SharedChannel(domain.FilterAll)])
		s.Equal(0, depths[domain.SharedChannel(domain.FilterFemale)])
	})

	s.Step("Step 2: a viewer in another city never sees him", func(ctx context.Context) {
		s.Register(ctx, lea, "lea", domain.Female, domain.FilterMale, "Nice")
		card, err := s.Stack.Engine.Next(ctx, lea, domain.FilterMale, "Nice")
		s.Require().NoError(err)
		s.Nil(card)
	})
}

func (s *feedSuite) TestEditBeforeConsumption() {
	clara, david := s.ID("clara"), s.ID("david")

	s.Step("Step 1: clara publishes then edits her bio", func(ctx context.Context) {
		s.Register(ctx, clara, "clara", domain.Female, domain.FilterAll, "Paris")
		p, err := s.Stack.Engine.Profiles.Get(ctx, clara)
		s.Require().NoError(err)
		p.Bio = "Now into climbing"
		_, err = s.Stack.Engine.SaveProfile(ctx, p)
		s.Require().NoError(err)
	})

	s.Step("Step 2: david only ever sees the edited snapshot", func(ctx context.Context) {
		s.Register(ctx, david, "david", domain.Male, domain.FilterFemale, "Paris")
		card, err := s.Stack.Engine.Next(ctx, david, domain.FilterFemale, "Paris")
		s.Require().NoError(err)
		s.Require().NotNil(card)
		s.Contains(card.Caption, "Now into climbing")

		card, err = s.Stack.Engine.Next(ctx, david, domain.FilterFemale, "Paris")
		s.Require().NoError(err)
		s.Nil(card)
	})
}
