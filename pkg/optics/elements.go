package optics

// Element is the rendered/geometric view of one surface. Its semi-diameter
// is a cached copy of the surface's clear aperture and is only refreshed
// by SyncToSurfaces.
type Element struct {
	Label        string
	SemiDiameter float64
}

// ElementModel mirrors the surface sequence one element per surface
type ElementModel struct {
	model    *SequentialModel
	elements []Element
}

// NewElementModel builds the element mirror for a sequential model
func NewElementModel(model *SequentialModel) *ElementModel {
	em := &ElementModel{model: model}
	em.SyncToSurfaces()
	return em
}

// Elements returns the element list, index-aligned with the surfaces
func (em *ElementModel) Elements() []Element {
	return em.elements
}

// SyncToSurfaces re-derives every element from its surface's current
// clear aperture
func (em *ElementModel) SyncToSurfaces() {
	surfaces := em.model.Surfaces()
	if len(em.elements) != len(surfaces) {
		em.elements = make([]Element, len(surfaces))
	}
	for i, srf := range surfaces {
		em.elements[i] = Element{
			Label:        srf.Label(),
			SemiDiameter: srf.ClearAperture(),
		}
	}
}
