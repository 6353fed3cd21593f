package scene

// Vec3 is a position/rotation triple in world units.
type Vec3 struct {
	X, Y, Z float64
}

// Object is one entry in the scene graph. Objects are created by the parser
// with a default transform and mutated in place by the subsystem stack each
// tick. The object set never grows or shrinks after load.
type Object struct {
	Name     string
	Position Vec3
	Rotation Vec3
	Scale    float64
}

// NewObject returns an object with the default transform: origin position,
// zero rotation, scale 1.
func NewObject(name string) *Object {
	return &Object{Name: name, Scale: 1}
}

// UINode is an opaque passthrough UI element. The grammar accepts ui blocks
// but does not structure them; the raw source line is carried for the host
// renderer to interpret.
type UINode struct {
	Raw string
}

// Graph is the intermediate representation produced by the parser: the
// validated scene a single runtime owns for the lifetime of one run.
//
// Objects keeps source order, which defines default render order.
type Graph struct {
	Name    string
	Objects []*Object
	UI      []UINode
	Physics map[string]string
	Audio   map[string]string
	Assets  []string
}

// NewGraph returns an empty graph with allocated config maps.
func NewGraph() *Graph {
	return &Graph{
		Physics: make(map[string]string),
		Audio:   make(map[string]string),
	}
}
