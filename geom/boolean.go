package geom

import (
	"math"
	"sort"

	"github.com/gogpu/gfx"
)

// Op is a boolean operation between two filled regions.
type Op uint8

const (
	// OpUnion keeps points inside either region.
	OpUnion Op = iota
	// OpXor keeps points inside exactly one region.
	OpXor
	// OpIntersect keeps points inside both regions.
	OpIntersect
	// OpExclude keeps points inside the first region but not the second.
	OpExclude
)

// String returns the name of the operation.
func (op Op) String() string {
	switch op {
	case OpUnion:
		return "Union"
	case OpXor:
		return "Xor"
	case OpIntersect:
		return "Intersect"
	case OpExclude:
		return "Exclude"
	default:
		return "Unknown"
	}
}

func (op Op) apply(a, b bool) bool {
	switch op {
	case OpUnion:
		return a || b
	case OpXor:
		return a != b
	case OpIntersect:
		return a && b
	case OpExclude:
		return a && !b
	default:
		return false
	}
}

const (
	// splitEps is the parametric tolerance for intersection tests.
	splitEps = 1e-9
	// probeEps is how far from an edge its two sides are sampled.
	probeEps = 1e-4
	// keyScale quantizes vertices when matching edge endpoints.
	keyScale = 1e6
)

// Combine returns the outline of op applied to the regions of a and b,
// both filled with the non-zero rule. The result contains line segments
// only, outer boundaries have positive area and holes negative area.
func Combine(a, b *Path, op Op) *Path {
	return FromPolygons(CombinePolygons(a.Flatten(DefaultTolerance), b.Flatten(DefaultTolerance), op))
}

// CombinePolygons is Combine for already flattened input.
//
// Every edge of both inputs is split at all mutual intersections. Each
// resulting piece is kept when the operation gives different answers on
// its two sides, directed so that the interior lies on its Perp side, and
// the kept pieces are chained back into closed loops.
func CombinePolygons(a, b []Polygon, op Op) []Polygon {
	segs := collectSegments(a, b)
	splitSegments(segs)

	var (
		edges []edge
		seen  = make(map[[2]vkey]bool)
	)
	for i := range segs {
		for _, e := range segs[i].pieces() {
			d := e.q.Sub(e.p)
			l := d.Length()
			if l < 1/keyScale {
				continue
			}
			mid := e.p.Lerp(e.q, 0.5)
			n := d.Perp().Mul(probeEps / l)
			left := mid.Add(n)
			right := mid.Sub(n)
			inL := op.apply(Winding(a, left) != 0, Winding(b, left) != 0)
			inR := op.apply(Winding(a, right) != 0, Winding(b, right) != 0)
			if inL == inR {
				continue
			}
			if !inL {
				e.p, e.q = e.q, e.p
			}
			k := [2]vkey{keyOf(e.p), keyOf(e.q)}
			if seen[k] {
				continue
			}
			seen[k] = true
			edges = append(edges, e)
		}
	}
	return chainEdges(edges)
}

type vkey struct{ x, y int64 }

func keyOf(pt gfx.Point) vkey {
	return vkey{int64(math.Round(pt.X * keyScale)), int64(math.Round(pt.Y * keyScale))}
}

type edge struct {
	p, q gfx.Point
}

type segment struct {
	edge
	splits []gfx.Point
}

func collectSegments(sets ...[]Polygon) []segment {
	var segs []segment
	for _, polys := range sets {
		for _, poly := range polys {
			n := len(poly)
			for i := 0; i < n; i++ {
				p, q := poly[i], poly[(i+1)%n]
				if keyOf(p) == keyOf(q) {
					continue
				}
				segs = append(segs, segment{edge: edge{p: p, q: q}})
			}
		}
	}
	return segs
}

func splitSegments(segs []segment) {
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			intersect(&segs[i], &segs[j])
		}
	}
}

// param returns the position of pt projected onto s, 0 at p and 1 at q.
func (s *segment) param(pt gfx.Point) float64 {
	d := s.q.Sub(s.p)
	return pt.Sub(s.p).Dot(d) / d.LengthSquared()
}

// addSplit records pt when it lies strictly inside s.
func (s *segment) addSplit(pt gfx.Point) {
	k := keyOf(pt)
	if k == keyOf(s.p) || k == keyOf(s.q) {
		return
	}
	s.splits = append(s.splits, pt)
}

func intersect(s1, s2 *segment) {
	d1 := s1.q.Sub(s1.p)
	d2 := s2.q.Sub(s2.p)
	denom := d1.Cross(d2)
	w := s2.p.Sub(s1.p)

	if math.Abs(denom) > splitEps*d1.Length()*d2.Length() {
		t := w.Cross(d2) / denom
		u := w.Cross(d1) / denom
		if t < -splitEps || t > 1+splitEps || u < -splitEps || u > 1+splitEps {
			return
		}
		// Prefer an existing endpoint so both segments share one vertex.
		var pt gfx.Point
		switch {
		case t <= splitEps:
			pt = s1.p
		case t >= 1-splitEps:
			pt = s1.q
		case u <= splitEps:
			pt = s2.p
		case u >= 1-splitEps:
			pt = s2.q
		default:
			pt = s1.p.Add(d1.Mul(t))
		}
		s1.addSplit(pt)
		s2.addSplit(pt)
		return
	}

	// Parallel: only collinear overlap matters.
	if math.Abs(w.Cross(d1)) > splitEps*d1.Length()*math.Max(1, w.Length()) {
		return
	}
	for _, pt := range [2]gfx.Point{s2.p, s2.q} {
		if t := s1.param(pt); t > splitEps && t < 1-splitEps {
			s1.addSplit(pt)
		}
	}
	for _, pt := range [2]gfx.Point{s1.p, s1.q} {
		if t := s2.param(pt); t > splitEps && t < 1-splitEps {
			s2.addSplit(pt)
		}
	}
}

// pieces returns the sub-edges of s between consecutive split points.
func (s *segment) pieces() []edge {
	if len(s.splits) == 0 {
		return []edge{s.edge}
	}
	pts := append([]gfx.Point(nil), s.splits...)
	sort.Slice(pts, func(i, j int) bool { return s.param(pts[i]) < s.param(pts[j]) })

	out := make([]edge, 0, len(pts)+1)
	prev := s.p
	for _, pt := range pts {
		if keyOf(pt) == keyOf(prev) {
			continue
		}
		out = append(out, edge{p: prev, q: pt})
		prev = pt
	}
	if keyOf(prev) != keyOf(s.q) {
		out = append(out, edge{p: prev, q: s.q})
	}
	return out
}

// chainEdges links directed edges end to start into closed loops. Edges
// that cannot be closed are dropped.
func chainEdges(edges []edge) []Polygon {
	out := make(map[vkey][]int, len(edges))
	for i, e := range edges {
		k := keyOf(e.p)
		out[k] = append(out[k], i)
	}
	used := make([]bool, len(edges))

	next := func(k vkey) int {
		for _, i := range out[k] {
			if !used[i] {
				return i
			}
		}
		return -1
	}

	var polys []Polygon
	for i := range edges {
		if used[i] {
			continue
		}
		used[i] = true
		start := keyOf(edges[i].p)
		loop := Polygon{edges[i].p}
		cur := edges[i]
		closed := true
		for keyOf(cur.q) != start {
			j := next(keyOf(cur.q))
			if j < 0 {
				closed = false
				break
			}
			used[j] = true
			loop = append(loop, cur.q)
			cur = edges[j]
		}
		if !closed {
			continue
		}
		loop = simplify(loop)
		if len(loop) >= 3 && math.Abs(loop.Area()) > 1/keyScale {
			polys = append(polys, loop)
		}
	}
	return polys
}

// simplify removes vertices that lie on the straight line through their
// neighbors.
func simplify(poly Polygon) Polygon {
	changed := true
	for changed && len(poly) >= 3 {
		changed = false
		n := len(poly)
		for i := 0; i < n; i++ {
			prev, cur, nxt := poly[(i+n-1)%n], poly[i], poly[(i+1)%n]
			d1, d2 := cur.Sub(prev), nxt.Sub(cur)
			if math.Abs(d1.Cross(d2)) <= splitEps*d1.Length()*d2.Length() && d1.Dot(d2) > 0 {
				poly = append(poly[:i:i], poly[i+1:]...)
				changed = true
				break
			}
		}
	}
	return poly
}
