// Package texture loads image files and registers them under caller-chosen
// tags. Each successful load occupies the next sampler slot, in load order,
// mirroring GPU texture-unit assignment. Entries live for the whole process;
// individual removal is unsupported.
package texture

import (
	"fmt"
	"image"
)

// MaxSlots bounds the registry, matching the 16 texture units a fragment
// shader can sample from.
const MaxSlots = 16

// SlotNotFound is the sentinel slot for lookups by an unknown tag.
const SlotNotFound = -1

// Entry associates a tag with a decoded texture and its sampler slot.
type Entry struct {
	Tag    string
	Handle *image.NRGBA
	Slot   int
}

// Registry holds loaded textures in slot order with unique tags.
// It is populated once during scene setup and read-only afterwards,
// so no locking is needed during rendering.
type Registry struct {
	entries []Entry
	byTag   map[string]int
	bound   []*image.NRGBA
}

func NewRegistry() *Registry {
	return &Registry{byTag: make(map[string]int)}
}

// Load decodes the image file at path and registers it under tag at the
// next free slot. It fails on decode errors, unsupported channel counts,
// duplicate tags and a full registry; no entry is added on failure.
func (r *Registry) Load(path, tag string) error {
	if _, dup := r.byTag[tag]; dup {
		return fmt.Errorf("texture: duplicate tag %q", tag)
	}
	if len(r.entries) >= MaxSlots {
		return fmt.Errorf("texture: registry full (%d slots), cannot load %q", MaxSlots, tag)
	}

	img, _, err := LoadImage(path)
	if err != nil {
		return err
	}

	slot := len(r.entries)
	r.entries = append(r.entries, Entry{Tag: tag, Handle: img, Slot: slot})
	r.byTag[tag] = slot
	return nil
}

// BindAll publishes the slot table the rasterizer samples from. Expected
// to run once after all loads complete; loads after BindAll are not bound.
func (r *Registry) BindAll() {
	r.bound = make([]*image.NRGBA, len(r.entries))
	for i := range r.entries {
		r.bound[i] = r.entries[i].Handle
	}
}

// Bound returns the texture bound at slot, or nil for the sentinel slot
// and for slots that were never bound.
func (r *Registry) Bound(slot int) *image.NRGBA {
	if slot < 0 || slot >= len(r.bound) {
		return nil
	}
	return r.bound[slot]
}

// FindHandle returns the texture registered under tag.
func (r *Registry) FindHandle(tag string) (*image.NRGBA, bool) {
	i, ok := r.byTag[tag]
	if !ok {
		return nil, false
	}
	return r.entries[i].Handle, true
}

// FindSlot returns the sampler slot for tag, or SlotNotFound. The miss
// value stays numeric because it feeds straight into the shader state,
// where a negative slot means "no texture bound".
func (r *Registry) FindSlot(tag string) int {
	i, ok := r.byTag[tag]
	if !ok {
		return SlotNotFound
	}
	return r.entries[i].Slot
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}
