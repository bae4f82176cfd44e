package generation

import (
	"strings"
	"time"
)

// Report is the persisted summary of one generation.
type Report struct {
	// ID is the generation id.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Seed reproduces the generation together with the request.
	Seed uint64 `json:"seed"`

	// Strategy is the requested strategy; Mode is what it resolved to.
	Strategy string `gorm:"size:32" json:"strategy"`
	Mode     string `gorm:"size:32" json:"mode"`

	// Players is the number of players in the world.
	Players int `json:"players"`

	// Classified counts pool items promoted to advancement or priority.
	Classified int `json:"classified"`

	// Reserved counts reserved locations over all players.
	Reserved int `json:"reserved"`

	Placeholders int `json:"placeholders"`
	TrashRemoved int `json:"trash_removed"`
	Fillers      int `json:"fillers"`

	// Warnings holds the balance warnings, one per line.
	Warnings string `gorm:"type:text" json:"warnings,omitempty"`

	// SnapshotKey is the object key of the configuration snapshot, if stored.
	SnapshotKey string `gorm:"size:255" json:"snapshot_key,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the default table name.
func (Report) TableName() string {
	return "generation_reports"
}

// WarningList splits Warnings back into individual messages.
func (r Report) WarningList() []string {
	if r.Warnings == "" {
		return nil
	}
	return strings.Split(r.Warnings, "\n")
}

// reportColumns are the columns the service reads and writes.
var reportColumns = []string{
	"id", "seed", "strategy", "mode", "players", "classified", "reserved",
	"placeholders", "trash_removed", "fillers", "warnings", "snapshot_key", "created_at",
}
