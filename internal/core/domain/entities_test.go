package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoverPhoto(t *testing.T) {
	// No photos at all
	empty := &Property{}
	assert.Nil(t, empty.CoverPhoto())
	assert.False(t, empty.HasPhotos())

	// Flagged cover wins regardless of position
	flagged := &Property{Photos: []Photo{
		{ID: 1, ImagePath: "a.jpg"},
		{ID: 2, ImagePath: "b.jpg", IsCover: true},
		{ID: 3, ImagePath: "c.jpg"},
	}}
	cover := flagged.CoverPhoto()
	assert.NotNil(t, cover)
	assert.Equal(t, int64(2), cover.ID)

	// Without a flag the first photo is the cover
	unflagged := &Property{Photos: []Photo{
		{ID: 4, ImagePath: "d.jpg"},
		{ID: 5, ImagePath: "e.jpg"},
	}}
	cover = unflagged.CoverPhoto()
	assert.NotNil(t, cover)
	assert.Equal(t, int64(4), cover.ID)
	assert.True(t, unflagged.HasPhotos())
}

func TestRecentlyPublished(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	fresh := &Property{CreatedAt: now.Add(-3 * 24 * time.Hour)}
	assert.True(t, fresh.RecentlyPublished(now))

	boundary := &Property{CreatedAt: now.Add(-7 * 24 * time.Hour)}
	assert.True(t, boundary.RecentlyPublished(now))

	stale := &Property{CreatedAt: now.Add(-8 * 24 * time.Hour)}
	assert.False(t, stale.RecentlyPublished(now))
}

func TestClientInterestCount(t *testing.T) {
	client := &Client{}
	assert.Equal(t, 0, client.InterestCount())

	client.InterestPropertyIDs = []int64{10, 11, 12}
	assert.Equal(t, 3, client.InterestCount())
}
