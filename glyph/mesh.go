package glyph

// TextScale converts font units to world units
const TextScale float32 = 0.02

// Point is a 2D table entry (vertex offset or UV)
type Point struct {
	X, Y float32
}

// GlyphInfo carries the font metrics of one character
type GlyphInfo struct {
	MinX, MinY, MaxX, MaxY int
	Advance                int

	UVTopLeft, UVTopRight, UVBottomLeft, UVBottomRight Point
}

// Metrics resolves font metrics; ok is false when the font lacks r
type Metrics interface {
	Glyph(r rune) (info GlyphInfo, ok bool)
}

// Blank cell geometry in font units and its UV sample point
var (
	SpaceMinX, SpaceMinY, SpaceMaxX, SpaceMaxY float32 = 0, -6, 2, -5

	SpaceUV = Point{X: 0.98, Y: 1}
)

// QuadTable maps every corner ID to a vertex offset and a UV
type QuadTable struct {
	Vertices []Point
	UVs      []Point
	// Missing lists atlas characters the font could not resolve; their entries stay zero
	Missing []rune
}

// BuildQuadTable lays out the atlas in glyph ID order, blank cell last.
// Each character sits at its own ID range so a font gap never shifts later IDs
func BuildQuadTable(m Metrics) QuadTable {
	t := QuadTable{
		Vertices: make([]Point, GlyphIDCount),
		UVs:      make([]Point, GlyphIDCount),
	}

	for style := 0; style < StyleCount; style++ {
		for col, r := range Charset[style] {
			info, ok := m.Glyph(r)
			if !ok {
				t.Missing = append(t.Missing, r)
				continue
			}
			base := GlyphBase(style, col)
			minX, minY := float32(info.MinX)*TextScale, float32(info.MinY)*TextScale
			maxX, maxY := float32(info.MaxX)*TextScale, float32(info.MaxY)*TextScale

			t.Vertices[base+int(CornerTopLeft)] = Point{minX, maxY}
			t.Vertices[base+int(CornerTopRight)] = Point{maxX, maxY}
			t.Vertices[base+int(CornerBottomLeft)] = Point{minX, minY}
			t.Vertices[base+int(CornerBottomRight)] = Point{maxX, minY}

			t.UVs[base+int(CornerTopLeft)] = info.UVTopLeft
			t.UVs[base+int(CornerTopRight)] = info.UVTopRight
			t.UVs[base+int(CornerBottomLeft)] = info.UVBottomLeft
			t.UVs[base+int(CornerBottomRight)] = info.UVBottomRight
		}
	}

	// Blank geometry is already in world-scale units
	t.Vertices[BlankGlyph+int(CornerTopLeft)] = Point{SpaceMinX, SpaceMaxY}
	t.Vertices[BlankGlyph+int(CornerTopRight)] = Point{SpaceMaxX, SpaceMaxY}
	t.Vertices[BlankGlyph+int(CornerBottomLeft)] = Point{SpaceMinX, SpaceMinY}
	t.Vertices[BlankGlyph+int(CornerBottomRight)] = Point{SpaceMaxX, SpaceMinY}
	for c := 0; c < CornersPerGlyph; c++ {
		t.UVs[BlankGlyph+c] = SpaceUV
	}

	return t
}

// TemplateText is laid out once into the shared instance mesh; the per-instance
// packed index swaps each quad's geometry in the vertex stage
const TemplateText = "123456789"

// Mesh is an indexed quad mesh, four vertices and six indices per character
type Mesh struct {
	Vertices []Point
	UVs      []Point
	Indices  []int32
}

// QuadIndices writes the two triangles of quad i into indices
func QuadIndices(i int, indices []int32) {
	v := int32(4 * i)
	indices[6*i+0] = v + 0
	indices[6*i+1] = v + 1
	indices[6*i+2] = v + 2

	indices[6*i+3] = v + 2
	indices[6*i+4] = v + 1
	indices[6*i+5] = v + 3
}

// BuildTemplateMesh lays text out left to right on the font baseline.
// Characters the font lacks produce degenerate quads with zero advance
func BuildTemplateMesh(m Metrics, text string) Mesh {
	runes := []rune(text)
	mesh := Mesh{
		Vertices: make([]Point, 4*len(runes)),
		UVs:      make([]Point, 4*len(runes)),
		Indices:  make([]int32, 6*len(runes)),
	}

	var pen float32
	for i, r := range runes {
		QuadIndices(i, mesh.Indices)

		info, _ := m.Glyph(r)
		idx := i * 4
		mesh.Vertices[idx+0] = Point{(pen + float32(info.MinX)) * TextScale, float32(info.MaxY) * TextScale}
		mesh.Vertices[idx+1] = Point{(pen + float32(info.MaxX)) * TextScale, float32(info.MaxY) * TextScale}
		mesh.Vertices[idx+2] = Point{(pen + float32(info.MinX)) * TextScale, float32(info.MinY) * TextScale}
		mesh.Vertices[idx+3] = Point{(pen + float32(info.MaxX)) * TextScale, float32(info.MinY) * TextScale}

		mesh.UVs[idx+0] = info.UVTopLeft
		mesh.UVs[idx+1] = info.UVTopRight
		mesh.UVs[idx+2] = info.UVBottomLeft
		mesh.UVs[idx+3] = info.UVBottomRight

		pen += float32(info.Advance)
	}
	return mesh
}

// DrawArgs is the five-word argument block of an indexed indirect draw:
// index count, instance count, start index, base vertex, start instance
type DrawArgs [5]uint32

// NewDrawArgs builds the argument block for a mesh; instance count starts at 0
// and is filled from the visible-list counter each frame
func NewDrawArgs(mesh Mesh) DrawArgs {
	return DrawArgs{uint32(len(mesh.Indices)), 0, 0, 0, 0}
}

// SetInstanceCount stores the number of instances to draw
func (a *DrawArgs) SetInstanceCount(n uint32) {
	a[1] = n
}

// InstanceCount returns the stored instance count
func (a DrawArgs) InstanceCount() uint32 {
	return a[1]
}
