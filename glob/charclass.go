package glob

import "github.com/uiui611/array-matcher/step"

// runeRange is an inclusive code point range; single characters have lo == hi.
type runeRange struct {
	lo, hi rune
}

// charClass is the resolved body of a bracket group such as "a-zA-Z_".
type charClass struct {
	ranges []runeRange
}

// newCharClass resolves a bracket body. Three glyphs "x-y" form a range;
// a '-' that cannot start the middle of such a triple is a literal.
//
//	newCharClass([]rune("a-z")) matches 'a'..'z'
//	newCharClass([]rune("abc")) matches 'a', 'b', 'c'
//	newCharClass([]rune("a-"))  matches 'a', '-'
func newCharClass(body []rune) charClass {
	var ranges []runeRange
	for i := 0; i < len(body); {
		if len(body) > i+2 && body[i+1] == '-' {
			ranges = append(ranges, runeRange{lo: body[i], hi: body[i+2]})
			i += 3
			continue
		}
		ranges = append(ranges, runeRange{lo: body[i], hi: body[i]})
		i++
	}
	return charClass{ranges: ranges}
}

func (c charClass) contains(r rune) bool {
	for _, rr := range c.ranges {
		if rr.lo <= r && r <= rr.hi {
			return true
		}
	}
	return false
}

func (c charClass) step() step.Step[rune] {
	return func(r rune, ok bool) step.Signal {
		return step.Bool(ok && c.contains(r))
	}
}
