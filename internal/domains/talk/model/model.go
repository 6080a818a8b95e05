package model

import "time"

const (
	CollectionPioneerTalks = "pioneer_talks"
	CollectionSpecialTalks = "special_talks"
	CollectionMemorials    = "memorials"
)

// PioneerTalk is the yearly circuit-overseer visit programme.
type PioneerTalk struct {
	ID            string    `bson:"_id"`
	Year          int       `bson:"year"`
	Date          time.Time `bson:"date"`
	Speaker1      string    `bson:"speaker_1"`
	Speaker2      string    `bson:"speaker_2,omitempty"`
	OpeningPrayer string    `bson:"opening_prayer,omitempty"`
	ClosingPrayer string    `bson:"closing_prayer,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
	CreatedBy     string    `bson:"created_by"`
	ModifiedAt    time.Time `bson:"modified_at"`
	ModifiedBy    string    `bson:"modified_by"`
}

type SpecialTalk struct {
	ID               string    `bson:"_id"`
	Year             int       `bson:"year"`
	Date             time.Time `bson:"date"`
	President        string    `bson:"president,omitempty"`
	Speaker          string    `bson:"speaker"`
	AuxiliarySpeaker string    `bson:"auxiliary_speaker,omitempty"`
	ClosingPrayer    string    `bson:"closing_prayer,omitempty"`
	CreatedAt        time.Time `bson:"created_at"`
	CreatedBy        string    `bson:"created_by"`
	ModifiedAt       time.Time `bson:"modified_at"`
	ModifiedBy       string    `bson:"modified_by"`
}

type Memorial struct {
	ID            string    `bson:"_id"`
	Year          int       `bson:"year"`
	Date          time.Time `bson:"date"`
	President     string    `bson:"president,omitempty"`
	OpeningPrayer string    `bson:"opening_prayer,omitempty"`
	Speaker       string    `bson:"speaker"`
	BreadPrayer   string    `bson:"bread_prayer,omitempty"`
	WinePrayer    string    `bson:"wine_prayer,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
	CreatedBy     string    `bson:"created_by"`
	ModifiedAt    time.Time `bson:"modified_at"`
	ModifiedBy    string    `bson:"modified_by"`
}
