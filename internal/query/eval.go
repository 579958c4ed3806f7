// Package query evaluates batches of grid queries read from YAML.
package query

import (
	"errors"
	"fmt"
	"io"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/gridcore/hex"
	"github.com/gravitas-015/gridcore/internal/config"
	"github.com/gravitas-015/gridcore/internal/num"
	"github.com/gravitas-015/gridcore/path"
	"github.com/gravitas-015/gridcore/triangle"
)

var (
	ErrUnknownOp  = errors.New("unknown operation")
	ErrBadPayload = errors.New("invalid payload")
)

// Evaluator answers queries using the kernel packages
type Evaluator struct {
	cfg *config.Config
}

// New creates an evaluator; a nil config means defaults
func New(cfg *config.Config) *Evaluator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Evaluator{cfg: cfg}
}

// Run decodes a Document from r and writes its Results to w.
// Failing queries are reported in their Response and do not stop the batch.
func (e *Evaluator) Run(r io.Reader, w io.Writer) error {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read queries: empty document")
		}
		return fmt.Errorf("failed to read queries: %w", err)
	}

	out := Results{Results: make([]Response, 0, len(doc.Queries))}
	failed := 0
	for i, req := range doc.Queries {
		if e.cfg.Output.LogQueries {
			log.Printf("Query %d: %s", i, req.Op)
		}
		resp := e.Eval(req)
		if resp.Error != "" {
			failed++
			log.Printf("Query %d (%s) failed: %s", i, req.Op, resp.Error)
		}
		out.Results = append(out.Results, resp)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(e.cfg.Output.Indent)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	log.Printf("Evaluated %d queries (%d failed)", len(doc.Queries), failed)
	return nil
}

// Eval answers a single request
func (e *Evaluator) Eval(req Request) Response {
	result, err := e.eval(req)
	if err != nil {
		return Response{Op: req.Op, Error: err.Error()}
	}
	return Response{Op: req.Op, Result: result}
}

func (e *Evaluator) eval(req Request) (any, error) {
	switch req.Op {
	case OpHexDistance:
		var p PairPayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return p.A.Distance(p.B), nil

	case OpHexLine:
		var p PairPayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return p.A.Line(p.B), nil

	case OpHexBearing:
		var p PairPayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return p.A.Bearing(p.B), nil

	case OpHexRange, OpHexRing:
		var p RadiusPayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		if err := e.checkRadius(p.Radius); err != nil {
			return nil, err
		}
		if req.Op == OpHexRange {
			return p.Center.Range(p.Radius), nil
		}
		if p.Side != nil {
			return hex.Side(p.Center, p.Radius, *p.Side), nil
		}
		return hex.Ring(p.Center, p.Radius), nil

	case OpHexRotate:
		var p RotatePayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return p.Coord.Rotate(p.Center, p.Steps), nil

	case OpHexReflect:
		var p ReflectPayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		axis, err := parseAxis(p.Axis)
		if err != nil {
			return nil, err
		}
		return p.Coord.Reflect(p.Center, axis), nil

	case OpHexVertices:
		var p TilePayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		vs := p.Coord.Vertices()
		return vertexViews(vs[:]), nil

	case OpHexEdges:
		var p TilePayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		es := p.Coord.Edges()
		return edgeViews(es[:]), nil

	case OpVertexAdjacent:
		var p CornerPayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		v, err := p.vertex()
		if err != nil {
			return nil, err
		}
		return vertexAdjacency(v), nil

	case OpEdgeAdjacent:
		var p EdgePayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		dir, err := parseEdgeDirection(p.Dir)
		if err != nil {
			return nil, err
		}
		edge := hex.Edge{Q: p.Q, R: p.R, Dir: dir}
		hexes := edge.AdjacentHexes()
		edges := edge.AdjacentEdges()
		ends := edge.Endpoints()
		return EdgeAdjacency{
			Hexes:     hexes[:],
			Edges:     edgeViews(edges[:]),
			Endpoints: vertexViews(ends[:]),
		}, nil

	case OpTriLine:
		var p TriPairPayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		if err := requireFaces(p.A, p.B); err != nil {
			return nil, err
		}
		if p.Step > 0 {
			return p.A.SmoothLine(p.B, p.Step), nil
		}
		if p.Step < 0 {
			return p.A.SmoothLine(p.B, e.cfg.Triangle.SmoothStep), nil
		}
		return p.A.Line(p.B), nil

	case OpTriRange:
		var p TriRadiusPayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		if err := e.checkRadius(p.Radius); err != nil {
			return nil, err
		}
		return p.Center.Range(p.Radius), nil

	case OpTriRotate:
		var p TriRotatePayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		if p.About != nil {
			return p.Coord.RotateAbout(*p.About, p.Steps), nil
		}
		return p.Coord.Rotate(p.Steps), nil

	case OpPathTiles:
		var p TilePathPayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		radius := e.radius(p.Radius)
		blocked := make(map[hex.Axial]bool, len(p.Blocked))
		for _, a := range p.Blocked {
			blocked[a] = true
		}
		union := make(map[hex.Axial]bool)
		for _, a := range hex.Disk(p.Center, radius) {
			union[a] = true
		}
		passable := func(a hex.Axial) bool { return !blocked[a] }
		tiles := path.AStar(p.From, p.To, path.HeuristicTo(p.To), path.NeighborsFromUnion(union, passable), nil)
		if tiles == nil {
			return nil, fmt.Errorf("no path from %v to %v", p.From, p.To)
		}
		return tiles, nil

	case OpPathRoad:
		var p RoadPayload
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		from, err := p.From.vertex()
		if err != nil {
			return nil, err
		}
		to, err := p.To.vertex()
		if err != nil {
			return nil, err
		}
		corners := path.AStar(from, to, path.VertexHeuristicTo(to), path.VertexNeighbors(p.Center, e.radius(p.Radius)), nil)
		if corners == nil {
			return nil, fmt.Errorf("no road from %v to %v", from, to)
		}
		edges, ok := path.EdgesAlong(corners)
		if !ok {
			return nil, fmt.Errorf("road %v is not connected", corners)
		}
		return RoadResult{Vertices: vertexViews(corners), Edges: edgeViews(edges)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, req.Op)
}

func (e *Evaluator) radius(r int) int {
	if r <= 0 {
		return e.cfg.Path.MaxRadius
	}
	return num.Clamp(r, 1, e.cfg.Path.MaxRadius)
}

// checkRadius bounds the radius of range and ring queries; their result
// grows with the square of it.
func (e *Evaluator) checkRadius(r int) error {
	if r < 0 {
		return fmt.Errorf("%w: negative radius %d", ErrBadPayload, r)
	}
	if r > e.cfg.Query.MaxRadius {
		return fmt.Errorf("%w: radius %d exceeds limit %d", ErrBadPayload, r, e.cfg.Query.MaxRadius)
	}
	return nil
}

func decode(req Request, into any) error {
	if req.Payload.Kind == 0 {
		return fmt.Errorf("%w: missing payload for %s", ErrBadPayload, req.Op)
	}
	if err := req.Payload.Decode(into); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}

func requireFaces(cs ...triangle.Coord) error {
	for _, c := range cs {
		if !c.IsFace() {
			return fmt.Errorf("%w: %v is not a face", ErrBadPayload, c)
		}
	}
	return nil
}

func (p CornerPayload) vertex() (hex.Vertex, error) {
	for i := 0; i < 6; i++ {
		d := hex.VertexDirection(i)
		if d.String() == p.Corner {
			return p.Hex.Vertex(d), nil
		}
	}
	return hex.Vertex{}, fmt.Errorf("%w: unknown corner %q", ErrBadPayload, p.Corner)
}

func parseAxis(s string) (hex.Axis, error) {
	for _, a := range []hex.Axis{hex.AxisQ, hex.AxisR, hex.AxisS} {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown axis %q", ErrBadPayload, s)
}

func parseEdgeDirection(s string) (hex.EdgeDirection, error) {
	for _, d := range []hex.EdgeDirection{hex.West, hex.NorthWest, hex.NorthEast} {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown edge direction %q", ErrBadPayload, s)
}

func vertexViews(vs []hex.Vertex) []VertexView {
	out := make([]VertexView, 0, len(vs))
	for _, v := range vs {
		owner, spin, _ := v.ToAxial()
		out = append(out, VertexView{Coord: v.Coord, Hex: owner, Spin: spin.String()})
	}
	return out
}

func edgeViews(es []hex.Edge) []EdgeView {
	out := make([]EdgeView, 0, len(es))
	for _, e := range es {
		out = append(out, EdgeView{Q: e.Q, R: e.R, Dir: e.Dir.String()})
	}
	return out
}

func vertexAdjacency(v hex.Vertex) VertexAdjacency {
	hexes, _ := v.AdjacentHexes()
	vs, _ := v.AdjacentVertices()
	es, _ := v.AdjacentEdges()
	return VertexAdjacency{
		Hexes:    hexes[:],
		Vertices: vertexViews(vs[:]),
		Edges:    edgeViews(es[:]),
	}
}
