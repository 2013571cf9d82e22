package authentic

import "math"

const (
	defaultGap            = 16
	defaultMobileColumns  = 1
	defaultTabletColumns  = 2
	defaultDesktopColumns = 3
	defaultAlignment      = "flex-start"
)

// EffectiveGap returns the section gap in pixels, defaulting to 16.
func (s MasonrySection) EffectiveGap() int {
	if s.Gap > 0 {
		return s.Gap
	}
	return defaultGap
}

// EffectiveColumns returns per-breakpoint column counts with the 1/2/3
// defaults applied for any count that is missing or non-positive.
func (s MasonrySection) EffectiveColumns() SectionColumns {
	cols := SectionColumns{
		Mobile:  defaultMobileColumns,
		Tablet:  defaultTabletColumns,
		Desktop: defaultDesktopColumns,
	}
	if s.Columns == nil {
		return cols
	}
	if s.Columns.Mobile > 0 {
		cols.Mobile = s.Columns.Mobile
	}
	if s.Columns.Tablet > 0 {
		cols.Tablet = s.Columns.Tablet
	}
	if s.Columns.Desktop > 0 {
		cols.Desktop = s.Columns.Desktop
	}
	return cols
}

// EffectiveFlex returns the column's relative width weight, defaulting to 1.
func (c MasonryColumn) EffectiveFlex() float64 {
	if c.Flex > 0 {
		return c.Flex
	}
	return 1
}

// ResolveMarginTop returns one top margin per image. A length-mismatched or
// absent array resolves to zeros.
func (c MasonryColumn) ResolveMarginTop() []int {
	return resolveZeroDefault(c.MarginTop, len(c.Images))
}

// ResolveMarginLeft returns one left margin per image, zero by default.
func (c MasonryColumn) ResolveMarginLeft() []int {
	return resolveZeroDefault(c.MarginLeft, len(c.Images))
}

// ResolveMarginRight returns one right margin per image, zero by default.
func (c MasonryColumn) ResolveMarginRight() []int {
	return resolveZeroDefault(c.MarginRight, len(c.Images))
}

// ResolveMarginBottom returns one bottom margin per image. Explicit
// marginBottom wins, then the legacy margins array, then the section gap for
// every image.
func (c MasonryColumn) ResolveMarginBottom(gap int) []int {
	if len(c.MarginBottom) == len(c.Images) && len(c.Images) > 0 {
		return c.MarginBottom
	}
	if len(c.Margins) == len(c.Images) && len(c.Images) > 0 {
		return c.Margins
	}
	out := make([]int, len(c.Images))
	for i := range out {
		out[i] = gap
	}
	return out
}

// ResolveFlexPerImage returns one flex weight per image, 1 by default.
func (c MasonryColumn) ResolveFlexPerImage() []float64 {
	if len(c.FlexPerImage) == len(c.Images) && len(c.Images) > 0 {
		return c.FlexPerImage
	}
	out := make([]float64, len(c.Images))
	for i := range out {
		out[i] = 1
	}
	return out
}

// ResolveJustifyContent returns one horizontal alignment per image,
// "flex-start" by default.
func (c MasonryColumn) ResolveJustifyContent() []string {
	return resolveAlignment(c.JustifyContent, len(c.Images))
}

// ResolveAlignItems returns one vertical alignment per image, "flex-start"
// by default.
func (c MasonryColumn) ResolveAlignItems() []string {
	return resolveAlignment(c.AlignItems, len(c.Images))
}

// ResolveLegacyMargins returns bottom margins for the flat legacy layout
// mode. When the margins array does not cover every image, margins are
// synthesized from an index-derived seed so the grid gets varied spacing
// between 0.6x and 1.4x of the gap without any stored state.
func (s MasonrySection) ResolveLegacyMargins() []int {
	gap := s.EffectiveGap()
	if len(s.Margins) == len(s.Images) && len(s.Images) > 0 {
		return s.Margins
	}

	out := make([]int, len(s.Images))
	for i := range out {
		seed := i*7 + 13
		variation := float64(seed%9) / 10
		minMargin := float64(gap) * 0.6
		maxMargin := float64(gap) * 1.4
		out[i] = int(math.Round(minMargin + (maxMargin-minMargin)*variation))
	}
	return out
}

func resolveZeroDefault(values []int, n int) []int {
	if len(values) == n && n > 0 {
		return values
	}
	return make([]int, n)
}

func resolveAlignment(values []string, n int) []string {
	if len(values) == n && n > 0 {
		return values
	}
	out := make([]string, n)
	for i := range out {
		out[i] = defaultAlignment
	}
	return out
}
