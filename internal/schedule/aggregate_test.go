package schedule

import (
	"testing"
	"time"

	"fyyur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountUpcoming(t *testing.T) {
	t.Parallel()

	shows := []models.Show{
		{StartTime: now.Add(-time.Hour)},
		{StartTime: now},
		{StartTime: now.Add(time.Hour)},
		{StartTime: now.Add(24 * time.Hour)},
	}

	assert.Equal(t, 2, CountUpcoming(shows, now))
	assert.Equal(t, 0, CountUpcoming(nil, now))
}

func TestCountUpcomingMatchesClassify(t *testing.T) {
	t.Parallel()

	shows := []models.Show{
		{StartTime: now.Add(-3 * time.Hour)},
		{StartTime: now},
		{StartTime: now.Add(time.Second)},
	}

	_, upcoming := Classify(shows, now)
	assert.Equal(t, len(upcoming), CountUpcoming(shows, now))
}

func TestGroupByArea(t *testing.T) {
	t.Parallel()

	venues := []models.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Shows: []models.Show{
			{StartTime: now.Add(time.Hour)},
			{StartTime: now.Add(-time.Hour)},
		}},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", Shows: []models.Show{
			{StartTime: now.Add(time.Hour)},
			{StartTime: now.Add(2 * time.Hour)},
		}},
		{ID: 4, Name: "Portland Jazz Club", City: "Portland", State: "OR"},
		{ID: 5, Name: "Portland Pub", City: "Portland", State: "ME"},
	}

	areas := GroupByArea(venues, now)

	require.Len(t, areas, 4)

	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "CA", areas[0].State)
	assert.Equal(t, []Summary{
		{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1},
		{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 2},
	}, areas[0].Venues)

	assert.Equal(t, "New York", areas[1].City)
	assert.Equal(t, []Summary{{ID: 2, Name: "The Dueling Pianos Bar"}}, areas[1].Venues)

	assert.Equal(t, "OR", areas[2].State)
	assert.Equal(t, "ME", areas[3].State)
}

func TestGroupByAreaPartitions(t *testing.T) {
	t.Parallel()

	cities := []string{"Austin", "Dallas", "Austin", "Reno", "Dallas", "Austin"}
	var venues []models.Venue
	for i, city := range cities {
		venues = append(venues, models.Venue{ID: i + 1, City: city, State: "TX"})
	}

	areas := GroupByArea(venues, now)

	seen := make(map[int]int)
	for _, area := range areas {
		for _, v := range area.Venues {
			seen[v.ID]++
		}
	}

	require.Len(t, seen, len(venues))
	for id, n := range seen {
		assert.Equal(t, 1, n, "venue %d in %d areas", id, n)
	}
	assert.Len(t, areas, 3)
}

func TestGroupByAreaEmpty(t *testing.T) {
	t.Parallel()

	areas := GroupByArea(nil, now)

	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestArtistSummaries(t *testing.T) {
	t.Parallel()

	artists := []models.Artist{
		{ID: 4, Name: "Guns N Petals", Shows: []models.Show{{StartTime: now.Add(-time.Hour)}}},
		{ID: 5, Name: "Matt Quevedo", Shows: []models.Show{{StartTime: now.Add(time.Hour)}}},
	}

	assert.Equal(t, []Summary{
		{ID: 4, Name: "Guns N Petals", NumUpcomingShows: 0},
		{ID: 5, Name: "Matt Quevedo", NumUpcomingShows: 1},
	}, ArtistSummaries(artists, now))
}
