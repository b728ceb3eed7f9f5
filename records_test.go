package avroschema

const pointSchema = `{
	"type": "record",
	"name": "Point",
	"namespace": "com.tryfix.test",
	"fields": [
		{"name": "x", "type": "int"},
		{"name": "y", "type": "int"}
	]
}`

// same record name with an extra field, used as a newer writer version
const point3Schema = `{
	"type": "record",
	"name": "Point",
	"namespace": "com.tryfix.test",
	"fields": [
		{"name": "x", "type": "int"},
		{"name": "y", "type": "int"},
		{"name": "z", "type": "int", "default": 0}
	]
}`

const shapeSchema = `{
	"type": "record",
	"name": "Shape",
	"namespace": "com.tryfix.test",
	"fields": [
		{"name": "kind", "type": {"type": "enum", "name": "ShapeKind", "symbols": ["CIRCLE", "SQUARE"]}},
		{"name": "points", "type": {"type": "array", "items": {
			"type": "record",
			"name": "Point",
			"fields": [
				{"name": "x", "type": "int"},
				{"name": "y", "type": "int"}
			]
		}}},
		{"name": "origin", "type": "Point"},
		{"name": "labels", "type": {"type": "map", "values": "string"}},
		{"name": "anchors", "type": {"type": "map", "values": "Point"}},
		{"name": "weight", "type": "double"},
		{"name": "serial", "type": "long"},
		{"name": "visible", "type": "boolean"},
		{"name": "blob", "type": "bytes"}
	]
}`

const nodeSchema = `{
	"type": "record",
	"name": "Node",
	"namespace": "com.tryfix.test",
	"fields": [
		{"name": "value", "type": "int"},
		{"name": "children", "type": {"type": "array", "items": "Node"}}
	]
}`

type Point struct {
	X, Y int
}

func (p Point) Fields() []Field {
	return []Field{
		{Name: `x`, Value: Int(p.X)},
		{Name: `y`, Value: Int(p.Y)},
	}
}

func pointFrom(f *Fields) Point {
	return Point{X: f.Int(`x`), Y: f.Int(`y`)}
}

func newPoint(f *Fields) (Point, error) {
	p := pointFrom(f)
	return p, f.Err()
}

var pointType = Declare(pointSchema, newPoint)

type Point3 struct {
	X, Y, Z int
}

func (p Point3) Fields() []Field {
	return []Field{
		{Name: `x`, Value: Int(p.X)},
		{Name: `y`, Value: Int(p.Y)},
		{Name: `z`, Value: Int(p.Z)},
	}
}

var point3Type = Declare(point3Schema, func(f *Fields) (Point3, error) {
	p := Point3{X: f.Int(`x`), Y: f.Int(`y`), Z: f.Int(`z`)}
	return p, f.Err()
})

// ShapeKind ordinals deliberately differ from the avro symbol positions
type ShapeKind int

const (
	Circle ShapeKind = 10
	Square ShapeKind = 20
)

func (k ShapeKind) String() string {
	switch k {
	case Circle:
		return `CIRCLE`
	case Square:
		return `SQUARE`
	}
	return `UNKNOWN`
}

type Shape struct {
	Kind    ShapeKind
	Points  []Point
	Origin  Point
	Labels  map[string]string
	Anchors map[string]Point
	Weight  float64
	Serial  int64
	Visible bool
	Blob    []byte
}

func nestedPoint(p Point) Value { return Nested(p) }

func (s Shape) Fields() []Field {
	return []Field{
		{Name: `kind`, Value: Enum(s.Kind)},
		{Name: `points`, Value: SequenceOf(s.Points, nestedPoint)},
		{Name: `origin`, Value: Nested(s.Origin)},
		{Name: `labels`, Value: MappingOf(s.Labels, String)},
		{Name: `anchors`, Value: MappingOf(s.Anchors, nestedPoint)},
		{Name: `weight`, Value: Double(s.Weight)},
		{Name: `serial`, Value: Long(s.Serial)},
		{Name: `visible`, Value: Bool(s.Visible)},
		{Name: `blob`, Value: Bytes(s.Blob)},
	}
}

func newShape(f *Fields) (Shape, error) {
	s := Shape{
		Kind:    EnumOf(f, `kind`, Circle, Square),
		Origin:  pointFrom(f.Record(`origin`)),
		Labels:  map[string]string{},
		Anchors: map[string]Point{},
		Weight:  f.Double(`weight`),
		Serial:  f.Long(`serial`),
		Visible: f.Bool(`visible`),
		Blob:    f.Bytes(`blob`),
	}

	for _, pf := range f.Records(`points`) {
		s.Points = append(s.Points, pointFrom(pf))
	}

	for k, v := range f.Map(`labels`) {
		label, _ := v.(string)
		s.Labels[k] = label
	}

	for k, pf := range f.RecordMap(`anchors`) {
		s.Anchors[k] = pointFrom(pf)
	}

	return s, f.Err()
}

var shapeType = Declare(shapeSchema, newShape)

func sampleShape() Shape {
	return Shape{
		Kind:    Circle,
		Points:  []Point{{X: 1, Y: 1}, {X: 2, Y: 2}},
		Origin:  Point{X: -5, Y: 7},
		Labels:  map[string]string{`color`: `red`, `size`: `L`},
		Anchors: map[string]Point{`a`: {X: 9, Y: 8}},
		Weight:  12.5,
		Serial:  1 << 40,
		Visible: true,
		Blob:    []byte{0x01, 0x02, 0x03},
	}
}

type Node struct {
	Value    int
	Children []Node
}

func (n Node) Fields() []Field {
	return []Field{
		{Name: `value`, Value: Int(n.Value)},
		{Name: `children`, Value: SequenceOf(n.Children, func(c Node) Value { return Nested(c) })},
	}
}

func nodeFrom(f *Fields) Node {
	n := Node{Value: f.Int(`value`)}
	for _, c := range f.Records(`children`) {
		n.Children = append(n.Children, nodeFrom(c))
	}
	return n
}

var nodeType = Declare(nodeSchema, func(f *Fields) (Node, error) {
	n := nodeFrom(f)
	return n, f.Err()
})

func chain(depth int) Node {
	n := Node{Value: depth}
	if depth > 0 {
		n.Children = []Node{chain(depth - 1)}
	}
	return n
}
