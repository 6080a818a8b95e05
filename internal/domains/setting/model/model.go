package model

import "time"

const CollectionSettings = "settings"

// SettingsID is the fixed identifier of the single settings document.
const SettingsID = "main"

type Settings struct {
	ID         string    `bson:"_id"`
	Name       string    `bson:"name"`
	ModifiedAt time.Time `bson:"modified_at"`
	ModifiedBy string    `bson:"modified_by"`
}
