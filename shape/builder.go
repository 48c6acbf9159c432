package shape

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/config"
	"github.com/gogpu/gfx/geom"
)

// Builder parses shape declarations from a section.
type Builder struct {
	log            *slog.Logger
	width, height  int
	fixedW, fixedH bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger parse errors are reported to. The default is
// gfx.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.log = l
	}
}

// WithWidth fixes the result width instead of deriving it from the shapes.
func WithWidth(w int) Option {
	return func(b *Builder) {
		b.width, b.fixedW = w, true
	}
}

// WithHeight fixes the result height instead of deriving it from the
// shapes.
func WithHeight(h int) Option {
	return func(b *Builder) {
		b.height, b.fixedH = h, true
	}
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result is the outcome of Build.
type Result struct {
	Shapes *Set
	// Width and Height are the fixed size, or the truncated right and
	// bottom extent of the drawable shapes.
	Width, Height int
	// Errors and Warnings count the reported parse problems.
	Errors, Warnings int
}

type combineDecl struct {
	index int
	key   string
	args  []string
}

// buildState holds the state of one Build call.
type buildState struct {
	log    *slog.Logger
	sec    config.Section
	slots  []*Shape
	errors int
	warns  int
}

// Build reads Shape, Shape2, ... from sec until the first empty key.
//
// Primitives are built in declaration order; a primitive that cannot be
// built stops the scan. Combine declarations are resolved afterwards in
// ascending order, so they may reference any primitive and any earlier
// Combine.
func (b *Builder) Build(sec config.Section) Result {
	bd := &buildState{log: gfx.LoggerOr(b.log), sec: sec}
	var combines []combineDecl

	for i := 1; ; i++ {
		key := shapeKey(i)
		decl := sec.ReadString(key)
		if decl == "" {
			break
		}
		args := config.Tokenize(decl, "|")
		if len(args) > 0 && hasPrefixFold(args[0], "combine") {
			bd.slots = append(bd.slots, nil)
			combines = append(combines, combineDecl{index: i - 1, key: key, args: args})
			continue
		}
		sh := bd.primitive(key, args)
		if sh == nil {
			break
		}
		bd.slots = append(bd.slots, sh)
		bd.modifiers(sh, args[1:], false)
	}

	for _, c := range combines {
		bd.combine(c)
	}

	set := &Set{}
	for _, sh := range bd.slots {
		if sh != nil {
			set.shapes = append(set.shapes, sh)
		}
	}
	res := Result{Shapes: set, Width: b.width, Height: b.height, Errors: bd.errors, Warnings: bd.warns}
	right, bottom := set.Extent()
	if !b.fixedW && float64(res.Width) < right {
		res.Width = int(right)
	}
	if !b.fixedH && float64(res.Height) < bottom {
		res.Height = int(bottom)
	}
	return res
}

func shapeKey(i int) string {
	if i == 1 {
		return "Shape"
	}
	return "Shape" + strconv.Itoa(i)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func (bd *buildState) error(msg string, args ...any) {
	bd.errors++
	bd.log.Error(msg, args...)
}

func (bd *buildState) warn(msg string, args ...any) {
	bd.warns++
	bd.log.Warn(msg, args...)
}

// primitive builds the shape named by args[0], or reports why it could not.
func (bd *buildState) primitive(key string, args []string) *Shape {
	if len(args) == 0 || !hasPrefixFold(args[0], "rectangle") {
		kind := ""
		if len(args) > 0 {
			kind = args[0]
		}
		bd.error("Invalid shape", "key", key, "shape", kind)
		return nil
	}
	tokens := config.Tokenize2(args[0][len("rectangle"):], ',', true)
	num := func(i int) float64 { return config.ParseFloat(tokens[i], 0) }

	var sh *Shape
	var err error
	switch n := len(tokens); {
	case n == 4:
		sh, err = NewRectangle(num(0), num(1), num(2), num(3))
	case n > 4:
		rx := num(4)
		ry := rx
		if n > 5 {
			ry = num(5)
		}
		sh, err = NewRoundedRectangle(num(0), num(1), num(2), num(3), rx, ry)
	default:
		bd.error("Rectangle has too few parameters", "key", key)
		return nil
	}
	if err != nil {
		bd.error("Could not create shape", "key", key, "err", err)
		return nil
	}
	return sh
}

// shapeRef resolves "ShapeN" to a slot index. "Shape" is the first slot.
func shapeRef(tok string) (int, bool) {
	tok = strings.TrimSpace(tok)
	if !hasPrefixFold(tok, "shape") {
		return 0, false
	}
	digits := strings.TrimSpace(tok[len("shape"):])
	if digits == "" {
		return 0, true
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return max(n-1, 0), true
}

var combineOps = []struct {
	name string
	op   geom.Op
}{
	{"union", geom.OpUnion},
	{"xor", geom.OpXor},
	{"intersect", geom.OpIntersect},
	{"exclude", geom.OpExclude},
}

func parseOp(tok string) (geom.Op, string, bool) {
	for _, c := range combineOps {
		if hasPrefixFold(tok, c.name) {
			return c.op, tok[len(c.name):], true
		}
	}
	return 0, "", false
}

// combine resolves one Combine declaration into its slot.
func (bd *buildState) combine(c combineDecl) {
	parentTok := strings.TrimSpace(c.args[0][len("combine"):])
	pid, ok := shapeRef(parentTok)
	switch {
	case !ok:
		bd.error("definition contains invalid shape identifier", "key", c.key, "value", parentTok)
		return
	case pid == c.index:
		bd.error("cannot combine with", "key", c.key, "value", parentTok)
		return
	case pid >= len(bd.slots) || bd.slots[pid] == nil:
		bd.error("definition contains invalid shape reference", "key", c.key, "value", parentTok)
		return
	}
	parent := bd.slots[pid]
	clone := func() *Shape {
		sh := parent.Clone()
		_ = sh.CombineWith(nil, geom.OpUnion)
		return sh
	}
	node := clone()
	bd.slots[c.index] = node
	parent.setCombined()

	var operands []*Shape
	var mods []string
	for _, tok := range c.args[1:] {
		op, ref, isOp := parseOp(tok)
		if !isOp {
			if isModifier(tok) {
				mods = append(mods, tok)
				continue
			}
			bd.error("definition contains invalid combine", "key", c.key, "value", tok)
			bd.slots[c.index] = clone()
			return
		}
		id, ok := shapeRef(ref)
		switch {
		case !ok || id >= len(bd.slots) || (id != c.index && bd.slots[id] == nil):
			bd.error("definition contains invalid shape identifier", "key", c.key, "value", strings.TrimSpace(ref))
		case id == c.index:
			bd.error("cannot combine with", "key", c.key, "value", strings.TrimSpace(ref))
		default:
			if err := node.CombineWith(bd.slots[id], op); err != nil {
				bd.error("could not combine with", "key", c.key, "value", strings.TrimSpace(ref), "err", err)
			} else {
				operands = append(operands, bd.slots[id])
				continue
			}
		}
		bd.slots[c.index] = clone()
		return
	}
	for _, o := range operands {
		o.setCombined()
	}
	bd.modifiers(node, mods, false)
}

var modifierNames = []string{"fillcolor", "strokecolor", "strokewidth", "offset", "rotate", "extend"}

func isModifier(tok string) bool {
	for _, name := range modifierNames {
		if hasPrefixFold(tok, name) {
			return true
		}
	}
	return false
}

// modifiers applies a modifier list to sh. Extend expands named keys of
// the section one level deep.
func (bd *buildState) modifiers(sh *Shape, args []string, extended bool) {
	for _, tok := range args {
		switch {
		case hasPrefixFold(tok, "fillcolor"):
			sh.SetFillColor(config.ParseColor(tok[len("fillcolor"):], sh.fill))
		case hasPrefixFold(tok, "strokecolor"):
			sh.SetStrokeColor(config.ParseColor(tok[len("strokecolor"):], sh.stroke))
		case hasPrefixFold(tok, "strokewidth"):
			w := config.ParseFloat(tok[len("strokewidth"):], 0)
			if w < 0 {
				bd.warn("StrokeWidth must not be negative", "value", w)
				w = 0
			}
			sh.SetStrokeWidth(w)
		case hasPrefixFold(tok, "offset"):
			v := config.Tokenize2(tok[len("offset"):], ',', true)
			if len(v) < 2 {
				bd.error("Offset has too few parameters")
				continue
			}
			sh.SetOffset(config.ParseFloat(v[0], 0), config.ParseFloat(v[1], 0))
		case hasPrefixFold(tok, "rotate"):
			v := config.Tokenize2(tok[len("rotate"):], ',', true)
			if len(v) == 0 {
				bd.warn("Rotate has too few parameters")
				continue
			}
			var ax, ay float64
			if len(v) > 2 {
				ax, ay = config.ParseFloat(v[1], 0), config.ParseFloat(v[2], 0)
			}
			sh.SetRotation(config.ParseFloat(v[0], 0), ax, ay)
		case hasPrefixFold(tok, "extend"):
			if extended {
				bd.error("Extend cannot be used recursively")
				continue
			}
			for _, name := range config.Tokenize(tok[len("extend"):], ",") {
				if v := bd.sec.ReadString(name); v != "" {
					bd.modifiers(sh, config.Tokenize(v, "|"), true)
				}
			}
		default:
			bd.error("Invalid shape modifier", "modifier", tok)
		}
	}
}
