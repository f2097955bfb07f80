package rangebar

// Semigraphics used to draw range bars and their frames. Strings use \u
// escapes to keep the source ASCII-safe.
const (
	// General Punctuation U+2000-U+206F
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	// Box Drawing U+2500-U+257F
	BoxDrawingsLightHorizontal               = "\u2500" // ─
	BoxDrawingsHeavyHorizontal               = "\u2501" // ━
	BoxDrawingsLightVertical                 = "\u2502" // │
	BoxDrawingsLightDownAndRight             = "\u250c" // ┌
	BoxDrawingsLightDownAndLeft              = "\u2510" // ┐
	BoxDrawingsLightUpAndRight               = "\u2514" // └
	BoxDrawingsLightUpAndLeft                = "\u2518" // ┘
	BoxDrawingsLightDownAndHorizontal        = "\u252c" // ┬
	BoxDrawingsHeavyDownAndHorizontal        = "\u2533" // ┳
	BoxDrawingsDoubleHorizontal              = "\u2550" // ═
	BoxDrawingsDownSingleAndHorizontalDouble = "\u2564" // ╤
	BoxDrawingsLightArcDownAndRight          = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft           = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft             = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight            = "\u2570" // ╰

	// Geometric Shapes U+25A0-U+25FF
	GeometricFisheye      = "\u25c9" // ◉
	GeometricBlackCircle  = "\u25cf" // ●
	GeometricBlackDiamond = "\u25c6" // ◆
)

// lineGlyphs is the pair of glyphs a line of a given weight is drawn with.
type lineGlyphs struct {
	line string
	tick string
}

// glyphsForWeight maps a stroke weight onto terminal line glyphs: light up to
// a weight of 2, heavy up to 4, double beyond.
func glyphsForWeight(weight float64) lineGlyphs {
	switch {
	case weight <= 2:
		return lineGlyphs{line: BoxDrawingsLightHorizontal, tick: BoxDrawingsLightDownAndHorizontal}
	case weight <= 4:
		return lineGlyphs{line: BoxDrawingsHeavyHorizontal, tick: BoxDrawingsHeavyDownAndHorizontal}
	default:
		return lineGlyphs{line: BoxDrawingsDoubleHorizontal, tick: BoxDrawingsDownSingleAndHorizontalDouble}
	}
}
