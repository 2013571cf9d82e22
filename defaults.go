package authentic

// DefaultConfig returns the built-in gallery document served whenever the
// persisted one is missing or unreadable. It is rebuilt on every call so
// callers can mutate the result freely.
func DefaultConfig() *PhotographyConfig {
	return &PhotographyConfig{
		Categories: []Category{
			{
				ID:          "naturaleza",
				Title:       "Naturaleza",
				Description: "Exploración visual de paisajes naturales, flora y fauna capturados en su estado más puro.",
				Sections: []MasonrySection{
					{
						Gap: 48,
						ColumnImages: []MasonryColumn{
							{
								Images:         []string{"/img/hero-sliders/1.jpg", "/img/hero-sliders/3.jpg", "/img/hero-sliders/5.jpg"},
								Flex:           1,
								MarginTop:      []int{0, 20, 10},
								MarginBottom:   []int{200, 40, 35},
								FlexPerImage:   []float64{0.9, 0.8, 1},
								JustifyContent: []string{"flex-start", "center", "flex-end"},
								AlignItems:     []string{"flex-start", "center", "flex-end"},
							},
							{
								Images:         []string{"/img/hero-sliders/2.jpg", "/img/hero-sliders/4.jpg"},
								Flex:           1.5,
								MarginTop:      []int{200, 15},
								MarginBottom:   []int{50, 60},
								FlexPerImage:   []float64{1, 1},
								JustifyContent: []string{"center", "flex-start"},
								AlignItems:     []string{"center", "flex-start"},
							},
						},
					},
				},
			},
			{
				ID:          "retratos",
				Title:       "Retratos",
				Description: "Colección de retratos que capturan la esencia y personalidad de cada sujeto.",
				Sections: []MasonrySection{
					{
						Gap: 48,
						ColumnImages: []MasonryColumn{
							{
								Images:         []string{"/img/hero-sliders/1.jpg", "/img/hero-sliders/2.jpg"},
								Flex:           1,
								MarginTop:      []int{0, 30},
								MarginBottom:   []int{40, 50},
								FlexPerImage:   []float64{1, 0.9},
								JustifyContent: []string{"center", "flex-start"},
								AlignItems:     []string{"center", "center"},
							},
							{
								Images:         []string{"/img/hero-sliders/3.jpg", "/img/hero-sliders/4.jpg", "/img/hero-sliders/5.jpg"},
								Flex:           1,
								MarginTop:      []int{20, 10, 0},
								MarginBottom:   []int{50, 40, 60},
								FlexPerImage:   []float64{0.8, 1, 0.9},
								JustifyContent: []string{"flex-end", "center", "flex-start"},
								AlignItems:     []string{"flex-start", "center", "flex-end"},
							},
						},
					},
				},
			},
		},
	}
}
