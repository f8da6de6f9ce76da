package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// AgeSuite tests birth-date helpers.
//
// Justification: the minimum-age scenarios are built from these helpers, and
// the fake service rejects with them. The "birthday is today" boundary must hold.
type AgeSuite struct {
	suite.Suite
}

func TestAgeSuite(t *testing.T) {
	suite.Run(t, new(AgeSuite))
}

func (s *AgeSuite) TestHasReachedAge_BirthdayBoundaries() {
	birth := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)

	s.Run("birthday today has not reached age", func() {
		now := time.Date(2012, 1, 15, 18, 30, 0, 0, time.UTC)
		s.False(HasReachedAge(birth, now, 12))
	})

	s.Run("day after birthday has reached age", func() {
		now := time.Date(2012, 1, 16, 0, 0, 0, 0, time.UTC)
		s.True(HasReachedAge(birth, now, 12))
	})

	s.Run("day before birthday has not reached age", func() {
		now := time.Date(2012, 1, 14, 23, 59, 59, 0, time.UTC)
		s.False(HasReachedAge(birth, now, 12))
	})

	s.Run("future birth date never reaches age", func() {
		future := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)
		now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		s.False(HasReachedAge(future, now, 0))
	})
}

func (s *AgeSuite) TestYearsBefore() {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	s.Run("positive years go back", func() {
		s.Equal("2014-10-18", FormatDate(YearsBefore(now, 12)))
	})

	s.Run("negative years go forward", func() {
		s.Equal("2027-10-18", FormatDate(YearsBefore(now, -1)))
	})

	s.Run("one thousand years back keeps a four digit year", func() {
		s.Equal("1026-10-18", FormatDate(YearsBefore(now, 1000)))
	})

	s.Run("Feb 29 rolls to Mar 1 on non-leap years", func() {
		leap := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
		s.Equal("2023-03-01", FormatDate(YearsBefore(leap, 1)))
	})
}

func (s *AgeSuite) TestFormatDate_UsesUTC() {
	loc := time.FixedZone("UTC+7", 7*60*60)
	t := time.Date(2000, 10, 26, 3, 0, 0, 0, loc)
	s.Equal("2000-10-25", FormatDate(t))
}
