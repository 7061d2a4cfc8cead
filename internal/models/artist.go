package models

import "github.com/uptrace/bun"

type Artist struct {
	bun.BaseModel `bun:"table:artists,alias:a" json:"-"`

	ID                 int      `bun:"id,pk,autoincrement" json:"id"`
	Name               string   `bun:"name,notnull" json:"name"`
	City               string   `bun:"city,notnull" json:"city"`
	State              string   `bun:"state,notnull" json:"state"`
	Phone              string   `bun:"phone,notnull" json:"phone"`
	ImageLink          string   `bun:"image_link,notnull" json:"image_link"`
	FacebookLink       string   `bun:"facebook_link,notnull" json:"facebook_link"`
	Website            string   `bun:"website,notnull" json:"website"`
	Genres             []string `bun:"genres,notnull" json:"genres"`
	SeekingVenue       bool     `bun:"seeking_venue,notnull" json:"seeking_venue"`
	SeekingDescription string   `bun:"seeking_description,notnull" json:"seeking_description"`

	Shows []Show `bun:"rel:has-many,join:id=artist_id" json:"-"`
}
