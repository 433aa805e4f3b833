package models

const (
	CategoryKindVideo       = "video"
	CategoryKindPhoto       = "photo"
	CategoryKindPublication = "publication"
)

var CategoryKinds = []string{
	CategoryKindVideo,
	CategoryKindPhoto,
	CategoryKindPublication,
}

// Category partitions content records of a single kind; slugs are unique
// per kind so external links survive renames.
type Category struct {
	BaseModel

	Kind string `json:"kind" gorm:"uniqueIndex:idx_categories_kind_slug;not null" validate:"required,oneof=video photo publication"`
	Slug string `json:"slug" gorm:"uniqueIndex:idx_categories_kind_slug;not null" validate:"lowercase"`
	Name string `json:"name"`

	// TotalRecords is only populated by the admin listing.
	TotalRecords int64 `json:"total_records" gorm:"-"`
}
