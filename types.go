package authentic

// PhotographyConfig is the single persisted document describing the gallery
// pages: an ordered list of categories plus optional about-page imagery.
// Insertion order is display order throughout.
type PhotographyConfig struct {
	Categories       []Category `json:"categories"`
	AboutImages      []string   `json:"aboutImages,omitempty"`
	AboutBottomImage string     `json:"aboutBottomImage,omitempty"`
}

// Category groups masonry sections under a slug identifier. Uniqueness of
// IDs is the responsibility of the admin UI, not the store.
type Category struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Sections    []MasonrySection `json:"sections"`
}

// SectionColumns holds per-breakpoint column counts.
type SectionColumns struct {
	Mobile  int `json:"mobile,omitempty"`
	Tablet  int `json:"tablet,omitempty"`
	Desktop int `json:"desktop,omitempty"`
}

// MasonrySection describes one masonry block. ColumnImages is the preferred
// layout mode; Images plus the flat margin arrays is the legacy mode kept for
// documents written by older admin builds. When ColumnImages is non-empty it
// takes precedence at render time.
type MasonrySection struct {
	Columns      *SectionColumns `json:"columns,omitempty"`
	Gap          int             `json:"gap,omitempty"`
	ColumnImages []MasonryColumn `json:"columnImages,omitempty"`

	// Legacy flat layout
	Images      []string `json:"images,omitempty"`
	Margins     []int    `json:"margins,omitempty"`
	MarginLeft  []int    `json:"marginLeft,omitempty"`
	MarginRight []int    `json:"marginRight,omitempty"`
}

// MasonryColumn is one vertical strip of images within a section. The images
// slice is the unit of mutation for add/replace/remove/reorder operations.
// Each per-image array, when present, must match len(Images); mismatched or
// absent arrays are replaced by synthesized defaults at resolve time.
type MasonryColumn struct {
	Images         []string  `json:"images"`
	Flex           float64   `json:"flex,omitempty"`
	Margins        []int     `json:"margins,omitempty"`
	MarginTop      []int     `json:"marginTop,omitempty"`
	MarginBottom   []int     `json:"marginBottom,omitempty"`
	MarginLeft     []int     `json:"marginLeft,omitempty"`
	MarginRight    []int     `json:"marginRight,omitempty"`
	FlexPerImage   []float64 `json:"flexPerImage,omitempty"`
	JustifyContent []string  `json:"justifyContent,omitempty"`
	AlignItems     []string  `json:"alignItems,omitempty"`
}
