package render

import (
	"sync"

	"vecarrow/core"
)

// MemoryPool is an in-process Pool backed by maps. It is the reference
// implementation used by the demo renderers and the test suite; a GPU
// backend would satisfy the same interface.
type MemoryPool struct {
	mu           sync.RWMutex
	nextMesh     MeshHandle
	nextMaterial MaterialHandle
	meshes       map[MeshHandle]Shape
	materials    map[MaterialHandle]core.Color
}

func NewMemoryPool() *MemoryPool {
	return &MemoryPool{
		nextMesh:     1,
		nextMaterial: 1,
		meshes:       make(map[MeshHandle]Shape),
		materials:    make(map[MaterialHandle]core.Color),
	}
}

func (p *MemoryPool) AllocateMesh(shape Shape) MeshHandle {
	p.mu.Lock()
	defer p.mu.Unlock()
	h := p.nextMesh
	p.nextMesh++
	p.meshes[h] = shape
	return h
}

func (p *MemoryPool) AllocateMaterial(color core.Color) MaterialHandle {
	p.mu.Lock()
	defer p.mu.Unlock()
	h := p.nextMaterial
	p.nextMaterial++
	p.materials[h] = color
	return h
}

// MeshShape reports the authored shape of a live mesh
func (p *MemoryPool) MeshShape(h MeshHandle) (Shape, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.meshes[h]
	return s, ok
}

func (p *MemoryPool) MaterialColor(h MaterialHandle) (core.Color, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.materials[h]
	return c, ok
}

func (p *MemoryPool) SetMaterialColor(h MaterialHandle, color core.Color) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.materials[h]; !ok {
		return false
	}
	p.materials[h] = color
	return true
}

func (p *MemoryPool) ReleaseMesh(h MeshHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.meshes, h)
}

func (p *MemoryPool) ReleaseMaterial(h MaterialHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.materials, h)
}

// MeshCount reports live mesh allocations
func (p *MemoryPool) MeshCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.meshes)
}

// MaterialCount reports live material allocations
func (p *MemoryPool) MaterialCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.materials)
}
