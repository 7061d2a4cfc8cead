package schedule

import (
	"testing"
	"time"

	"fyyur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)

func TestIsUpcoming(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUpcoming(now.Add(time.Nanosecond), now))
	assert.False(t, IsUpcoming(now, now))
	assert.False(t, IsUpcoming(now.Add(-time.Hour), now))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	shows := []models.Show{
		{ID: 1, StartTime: now.Add(-48 * time.Hour)},
		{ID: 2, StartTime: now.Add(time.Hour)},
		{ID: 3, StartTime: now},
		{ID: 4, StartTime: now.Add(72 * time.Hour)},
		{ID: 5, StartTime: now.Add(-time.Minute)},
	}

	past, upcoming := Classify(shows, now)

	assert.Equal(t, []int{1, 3, 5}, ids(past))
	assert.Equal(t, []int{2, 4}, ids(upcoming))
}

func TestClassifyPartitions(t *testing.T) {
	t.Parallel()

	var shows []models.Show
	for i := -10; i <= 10; i++ {
		shows = append(shows, models.Show{ID: i + 100, StartTime: now.Add(time.Duration(i) * time.Hour)})
	}

	past, upcoming := Classify(shows, now)

	require.Len(t, append(past, upcoming...), len(shows))

	seen := make(map[int]bool)
	for _, show := range past {
		assert.False(t, show.StartTime.After(now))
		seen[show.ID] = true
	}
	for _, show := range upcoming {
		assert.True(t, show.StartTime.After(now))
		assert.False(t, seen[show.ID], "show %d classified twice", show.ID)
		seen[show.ID] = true
	}
	assert.Len(t, seen, len(shows))
}

func TestClassifyEmpty(t *testing.T) {
	t.Parallel()

	past, upcoming := Classify(nil, now)

	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestArtistShows(t *testing.T) {
	t.Parallel()

	shows := []models.Show{
		{
			ArtistID:  4,
			StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
			Artist:    &models.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://example.com/gnp.jpg"},
		},
		{ArtistID: 7, StartTime: now},
	}

	got := ArtistShows(shows)

	require.Len(t, got, 2)
	assert.Equal(t, ArtistShow{
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.com/gnp.jpg",
		StartTime:       "2019-05-21T21:30:00Z",
	}, got[0])
	assert.Equal(t, 7, got[1].ArtistID)
	assert.Empty(t, got[1].ArtistName)
}

func TestVenueShows(t *testing.T) {
	t.Parallel()

	local := time.FixedZone("EST", -5*60*60)
	shows := []models.Show{
		{
			VenueID:   1,
			StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, local),
			Venue:     &models.Venue{ID: 1, Name: "The Musical Hop", ImageLink: "https://example.com/hop.jpg"},
		},
	}

	got := VenueShows(shows)

	require.Len(t, got, 1)
	assert.Equal(t, "The Musical Hop", got[0].VenueName)
	assert.Equal(t, "https://example.com/hop.jpg", got[0].VenueImageLink)
	assert.Equal(t, "2035-04-02T01:00:00Z", got[0].StartTime)
}

func ids(shows []models.Show) []int {
	out := make([]int, 0, len(shows))
	for _, show := range shows {
		out = append(out, show.ID)
	}
	return out
}
