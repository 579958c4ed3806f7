package query

import (
	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/gridcore/hex"
	"github.com/gravitas-015/gridcore/triangle"
)

// Query operations - tiles
const (
	OpHexDistance = "hex.distance"
	OpHexLine     = "hex.line"
	OpHexRange    = "hex.range"
	OpHexRing     = "hex.ring"
	OpHexRotate   = "hex.rotate"
	OpHexReflect  = "hex.reflect"
	OpHexBearing  = "hex.bearing"
	OpHexVertices = "hex.vertices"
	OpHexEdges    = "hex.edges"
)

// Query operations - corners, sides and faces
const (
	OpVertexAdjacent = "vertex.adjacent"
	OpEdgeAdjacent   = "edge.adjacent"
	OpTriLine        = "tri.line"
	OpTriRange       = "tri.range"
	OpTriRotate      = "tri.rotate"
)

// Query operations - paths
const (
	OpPathTiles = "path.tiles"
	OpPathRoad  = "path.road"
)

// Document is a batch of queries
type Document struct {
	Queries []Request `yaml:"queries"`
}

// Request is a single query; Payload is decoded according to Op
type Request struct {
	Op      string    `yaml:"op"`
	Payload yaml.Node `yaml:"payload"`
}

// Results is the answer to a Document, one Response per Request
type Results struct {
	Results []Response `yaml:"results"`
}

// Response carries either a result or an error message
type Response struct {
	Op     string `yaml:"op"`
	Result any    `yaml:"result,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// --- Request Payloads ---

// PairPayload names two tiles
type PairPayload struct {
	A hex.Axial `yaml:"a"`
	B hex.Axial `yaml:"b"`
}

// RadiusPayload names a tile and a radius; Side picks one side of a ring
type RadiusPayload struct {
	Center hex.Axial `yaml:"center"`
	Radius int       `yaml:"radius"`
	Side   *int      `yaml:"side"`
}

// RotatePayload turns a tile about a center (origin when omitted)
type RotatePayload struct {
	Coord  hex.Axial `yaml:"coord"`
	Center hex.Axial `yaml:"center"`
	Steps  int       `yaml:"steps"`
}

// ReflectPayload mirrors a tile across q, r or s through center
type ReflectPayload struct {
	Coord  hex.Axial `yaml:"coord"`
	Center hex.Axial `yaml:"center"`
	Axis   string    `yaml:"axis"`
}

// TilePayload names one tile
type TilePayload struct {
	Coord hex.Axial `yaml:"coord"`
}

// CornerPayload names a tile corner such as up or down_left
type CornerPayload struct {
	Hex    hex.Axial `yaml:"hex"`
	Corner string    `yaml:"corner"`
}

// EdgePayload names an edge by owner and west, north_west or north_east
type EdgePayload struct {
	Q   int    `yaml:"q"`
	R   int    `yaml:"r"`
	Dir string `yaml:"dir"`
}

// TriPairPayload names two faces; a positive Step asks for a smooth line
type TriPairPayload struct {
	A    triangle.Coord `yaml:"a"`
	B    triangle.Coord `yaml:"b"`
	Step int            `yaml:"step"`
}

// TriRadiusPayload names a face and a radius
type TriRadiusPayload struct {
	Center triangle.Coord `yaml:"center"`
	Radius int            `yaml:"radius"`
}

// TriRotatePayload turns a face about the origin or about a lattice point
type TriRotatePayload struct {
	Coord triangle.Coord  `yaml:"coord"`
	About *triangle.Coord `yaml:"about"`
	Steps int             `yaml:"steps"`
}

// TilePathPayload searches a disc for a tile path avoiding Blocked
type TilePathPayload struct {
	From    hex.Axial   `yaml:"from"`
	To      hex.Axial   `yaml:"to"`
	Center  hex.Axial   `yaml:"center"`
	Radius  int         `yaml:"radius"`
	Blocked []hex.Axial `yaml:"blocked"`
}

// RoadPayload searches a disc for a walk along tile edges
type RoadPayload struct {
	From   CornerPayload `yaml:"from"`
	To     CornerPayload `yaml:"to"`
	Center hex.Axial     `yaml:"center"`
	Radius int           `yaml:"radius"`
}

// --- Result Views ---

// VertexView is a corner with its owning tile and spin
type VertexView struct {
	Coord triangle.Coord `yaml:"coord"`
	Hex   hex.Axial      `yaml:"hex"`
	Spin  string         `yaml:"spin"`
}

// EdgeView is an edge with a named direction
type EdgeView struct {
	Q   int    `yaml:"q"`
	R   int    `yaml:"r"`
	Dir string `yaml:"dir"`
}

// VertexAdjacency lists what touches a corner
type VertexAdjacency struct {
	Hexes    []hex.Axial  `yaml:"hexes"`
	Vertices []VertexView `yaml:"vertices"`
	Edges    []EdgeView   `yaml:"edges"`
}

// EdgeAdjacency lists what touches an edge
type EdgeAdjacency struct {
	Hexes     []hex.Axial  `yaml:"hexes"`
	Edges     []EdgeView   `yaml:"edges"`
	Endpoints []VertexView `yaml:"endpoints"`
}

// RoadResult is a corner walk and the edges it uses
type RoadResult struct {
	Vertices []VertexView `yaml:"vertices"`
	Edges    []EdgeView   `yaml:"edges"`
}
