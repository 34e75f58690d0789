package colorval

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// darkLuminanceCutoff splits swatch backgrounds into those needing light
// versus dark foreground text (CIE Y, 0..1).
const darkLuminanceCutoff = 0.45

const percentScale = 100.0

// RGB returns the 8-bit channel values of a color token, for terminal
// truecolor rendering. ok is false when the token cannot be interpreted
// (which the grammar makes rare: only degenerate function arguments).
func RGB(value string) (r, g, b uint8, ok bool) {
	c, ok := parse(value)
	if !ok {
		return 0, 0, 0, false
	}

	r8, g8, b8 := c.RGB255()

	return r8, g8, b8, true
}

// Swatch returns the canonical #rrggbb form of a color token for display
// purposes. Alpha channels are discarded.
func Swatch(value string) (string, bool) {
	c, ok := parse(value)
	if !ok {
		return "", false
	}

	return c.Hex(), true
}

// IsDark reports whether a color token reads as dark, so UI surfaces can
// pick a contrasting foreground. Unparseable tokens count as dark.
func IsDark(value string) bool {
	c, ok := parse(value)
	if !ok {
		return true
	}

	_, y, _ := c.Xyz()

	return y < darkLuminanceCutoff
}

// parse interprets one token of the recognized grammar as a color.
// Spaces are kept intact so space-separated function components survive.
func parse(value string) (colorful.Color, bool) {
	v := strings.ToLower(strings.TrimSpace(value))

	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(v)
	case strings.HasPrefix(v, "rgb"):
		return parseRGBFunc(v)
	case strings.HasPrefix(v, "hsl"):
		return parseHSLFunc(v)
	default:
		return colorful.Color{}, false
	}
}

func parseHex(v string) (colorful.Color, bool) {
	digits := v[1:]

	// Drop alpha digits; go-colorful handles the 3- and 6-digit forms.
	switch len(digits) {
	case hexLenRGBA4:
		digits = digits[:hexLenRGB3]
	case hexLenRGBA8:
		digits = digits[:hexLenRGB6]
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return colorful.Color{}, false
	}

	return c, true
}

func parseRGBFunc(v string) (colorful.Color, bool) {
	parts := funcArgs(v)
	if len(parts) < 3 {
		return colorful.Color{}, false
	}

	var ch [3]float64

	for i := range 3 {
		f, ok := component(parts[i], 255)
		if !ok {
			return colorful.Color{}, false
		}

		ch[i] = f
	}

	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}.Clamped(), true
}

func parseHSLFunc(v string) (colorful.Color, bool) {
	parts := funcArgs(v)
	if len(parts) < 3 {
		return colorful.Color{}, false
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "deg"), 64)
	if err != nil {
		return colorful.Color{}, false
	}

	s, sOK := component(parts[1], 1)
	l, lOK := component(parts[2], 1)

	if !sOK || !lOK {
		return colorful.Color{}, false
	}

	return colorful.Hsl(h, s, l).Clamped(), true
}

// funcArgs splits "rgb(a,b,c)" or "rgb(a b c / d)" argument lists into
// individual components, dropping any slash-separated alpha.
func funcArgs(v string) []string {
	open := strings.IndexByte(v, '(')
	end := strings.LastIndexByte(v, ')')

	if open < 0 || end <= open {
		return nil
	}

	inner := v[open+1 : end]
	if slash := strings.IndexByte(inner, '/'); slash >= 0 {
		inner = inner[:slash]
	}

	return strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// component parses one numeric component. A percent sign scales to the
// 0..1 range; otherwise the value is divided by scale.
func component(s string, scale float64) (float64, bool) {
	if p, found := strings.CutSuffix(s, "%"); found {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}

		return f / percentScale, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f / scale, true
}
