package models

// OrphanAsset is a blob whose best-effort delete failed after the owning
// record mutation already succeeded. The cleaner retries these out-of-band.
type OrphanAsset struct {
	BaseModel

	Bucket    string `json:"bucket" gorm:"uniqueIndex:idx_orphan_assets_location"`
	Path      string `json:"path" gorm:"uniqueIndex:idx_orphan_assets_location"`
	Attempts  int    `json:"attempts"`
	LastError string `json:"last_error"`
}
