// Package forms binds submitted venue, artist and show fields and
// converts between them and the stored models.
package forms

import (
	"strings"

	"fyyur/internal/models"
)

type Venue struct {
	Name               string   `json:"name" form:"name" validate:"required,notblank,max=120"`
	City               string   `json:"city" form:"city" validate:"required,notblank,max=120"`
	State              string   `json:"state" form:"state" validate:"required,us_state"`
	Address            string   `json:"address" form:"address" validate:"required,notblank,max=120"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,max=120,phone"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,max=500,url"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,genre"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,max=500,url,contains=facebook.com"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,max=500,url"`
	SeekingTalent      Checkbox `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=500"`
}

type Artist struct {
	Name               string   `json:"name" form:"name" validate:"required,notblank,max=120"`
	City               string   `json:"city" form:"city" validate:"required,notblank,max=120"`
	State              string   `json:"state" form:"state" validate:"required,us_state"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,max=120,phone"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,max=500,url"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,genre"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,max=500,url,contains=facebook.com"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,max=500,url"`
	SeekingVenue       Checkbox `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=500"`
}

type Show struct {
	ArtistID  int    `json:"artist_id" form:"artist_id" validate:"required,gt=0"`
	VenueID   int    `json:"venue_id" form:"venue_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" form:"start_time" validate:"required,start_time"`
}

type Search struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}

func (f Venue) Model(id int) *models.Venue {
	return &models.Venue{
		ID:                 id,
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Address:            strings.TrimSpace(f.Address),
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		Genres:             f.Genres,
		SeekingTalent:      bool(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

func FromVenue(v *models.Venue) Venue {
	return Venue{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             nonNil(v.Genres),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.Website,
		SeekingTalent:      Checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

func (f Artist) Model(id int) *models.Artist {
	return &models.Artist{
		ID:                 id,
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		Genres:             f.Genres,
		SeekingVenue:       bool(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

func FromArtist(a *models.Artist) Artist {
	return Artist{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             nonNil(a.Genres),
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.Website,
		SeekingVenue:       Checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

// Model assumes the form passed Validate.
func (f Show) Model() (*models.Show, error) {
	start, err := ParseStartTime(f.StartTime)
	if err != nil {
		return nil, err
	}

	return &models.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: start.UTC(),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
