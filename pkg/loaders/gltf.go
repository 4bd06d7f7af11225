package loaders

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/qmuntal/gltf"
)

// LoadGLTF loads every triangle mesh in a glTF or GLB file.
// Each glTF mesh becomes one geometry.TriangleMesh using the given material.
func LoadGLTF(path string, mat material.Material) ([]geometry.Hittable, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return MeshFromDocument(doc, mat)
}

// MeshFromDocument converts the triangle primitives of a decoded document.
// Vertex positions are used as-is; node transforms are not applied.
func MeshFromDocument(doc *gltf.Document, mat material.Material) ([]geometry.Hittable, error) {
	var meshes []geometry.Hittable

	for _, m := range doc.Meshes {
		var vertices []core.Vec3
		var faces []int

		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				// Skip points, lines and strips
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := readPositions(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}

			baseVertex := len(vertices)
			vertices = append(vertices, positions...)

			if prim.Indices != nil {
				indices, err := readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: read indices: %w", m.Name, err)
				}
				for _, index := range indices {
					faces = append(faces, baseVertex+index)
				}
			} else {
				// No indices: consecutive vertices form triangles
				for i := 0; i+2 < len(positions); i += 3 {
					faces = append(faces, baseVertex+i, baseVertex+i+1, baseVertex+i+2)
				}
			}
		}

		if len(faces) == 0 {
			continue
		}

		mesh, err := geometry.NewTriangleMesh(vertices, faces, mat)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		if mesh.TriangleCount() > 0 {
			meshes = append(meshes, mesh)
		}
	}

	if len(meshes) == 0 {
		return nil, fmt.Errorf("%w: document has no triangle meshes", ErrUnsupportedFormat)
	}
	return meshes, nil
}

// readPositions reads a float VEC3 accessor
func readPositions(doc *gltf.Document, accessorIdx int) ([]core.Vec3, error) {
	accessor, data, start, stride, err := accessorBytes(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("%w: positions must be float VEC3, got %v / %v",
			ErrUnsupportedFormat, accessor.Type, accessor.ComponentType)
	}
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}

	if err := checkRange(data, start, stride, 12, accessor.Count); err != nil {
		return nil, err
	}

	result := make([]core.Vec3, accessor.Count)
	for i := range result {
		offset := start + i*stride
		result[i] = core.NewVec3(
			readFloat32(data[offset:]),
			readFloat32(data[offset+4:]),
			readFloat32(data[offset+8:]),
		)
	}
	return result, nil
}

// readIndices reads an unsigned SCALAR accessor
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor, data, start, stride, err := accessorBytes(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("%w: indices must be SCALAR, got %v", ErrUnsupportedFormat, accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("%w: index component type %v", ErrUnsupportedFormat, accessor.ComponentType)
	}
	if stride == 0 {
		stride = size
	}

	if err := checkRange(data, start, stride, size, accessor.Count); err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		offset := start + i*stride
		switch size {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[offset:]))
		default:
			result[i] = int(binary.LittleEndian.Uint32(data[offset:]))
		}
	}
	return result, nil
}

// accessorBytes resolves an accessor to its embedded buffer, start offset and stride
func accessorBytes(doc *gltf.Document, accessorIdx int) (*gltf.Accessor, []byte, int, int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) || doc.Accessors[accessorIdx] == nil {
		return nil, nil, 0, 0, fmt.Errorf("%w: accessor %d out of range", ErrUnsupportedFormat, accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.BufferView == nil {
		return nil, nil, 0, 0, fmt.Errorf("%w: sparse accessors", ErrUnsupportedFormat)
	}

	viewIdx := *accessor.BufferView
	if viewIdx < 0 || viewIdx >= len(doc.BufferViews) || doc.BufferViews[viewIdx] == nil {
		return nil, nil, 0, 0, fmt.Errorf("%w: buffer view %d out of range", ErrUnsupportedFormat, viewIdx)
	}
	bufferView := doc.BufferViews[viewIdx]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) || doc.Buffers[bufferView.Buffer] == nil {
		return nil, nil, 0, 0, fmt.Errorf("%w: buffer %d out of range", ErrUnsupportedFormat, bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, nil, 0, 0, fmt.Errorf("%w: buffer %q has no data", ErrUnsupportedFormat, buffer.URI)
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	return accessor, buffer.Data, start, bufferView.ByteStride, nil
}

func checkRange(data []byte, start, stride, size, count int) error {
	if count == 0 {
		return nil
	}
	if end := start + (count-1)*stride + size; start < 0 || end > len(data) {
		return fmt.Errorf("%w: accessor reads bytes [%d, %d) of a %d byte buffer", ErrUnsupportedFormat, start, end, len(data))
	}
	return nil
}

// readFloat32 reads a little-endian float32
func readFloat32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}

// NewMeshDocument packs one indexed triangle mesh into an in-memory glTF
// document with a single buffer. Positions are stored as float VEC3 and
// indices as unsigned 32-bit scalars.
func NewMeshDocument(name string, positions []core.Vec3, indices []int) *gltf.Document {
	data := make([]byte, 0, len(positions)*12+len(indices)*4)
	for _, p := range positions {
		for _, c := range [3]float64{p.X, p.Y, p.Z} {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(c)))
		}
	}
	positionBytes := len(data)
	for _, index := range indices {
		data = binary.LittleEndian.AppendUint32(data, uint32(index))
	}

	positionView, indexView := 0, 1
	positionAccessor, indexAccessor := 0, 1

	return &gltf.Document{
		Asset:   gltf.Asset{Version: "2.0", Generator: "weekend-raytracer"},
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: positionBytes},
			{Buffer: 0, ByteOffset: positionBytes, ByteLength: len(data) - positionBytes},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: &positionView, ComponentType: gltf.ComponentFloat, Count: len(positions), Type: gltf.AccessorVec3},
			{BufferView: &indexView, ComponentType: gltf.ComponentUint, Count: len(indices), Type: gltf.AccessorScalar},
		},
		Meshes: []*gltf.Mesh{{
			Name: name,
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: positionAccessor},
				Indices:    &indexAccessor,
				Mode:       gltf.PrimitiveTriangles,
			}},
		}},
	}
}
