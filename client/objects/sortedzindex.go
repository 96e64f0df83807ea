package objects

import (
	"fmt"
	"sort"
)

// SortedZIndexObject is a GameObject that maintains a sorted list of child objects by z-index.
// Children with equal z-index keep the order they were added in.
type SortedZIndexObject struct {
	*BaseObject

	// sorted is a list of child objects sorted by z-index.
	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
		sorted:     make([]GameObject, 0),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)

	i := sort.Search(len(o.sorted), func(i int) bool {
		return o.sorted[i].GetZIndex() > child.GetZIndex()
	})
	o.sorted = append(o.sorted, nil)
	copy(o.sorted[i+1:], o.sorted[i:])
	o.sorted[i] = child
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	for i, obj := range o.sorted {
		if obj.GetID() == id {
			o.sorted = append(o.sorted[:i], o.sorted[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("child %s not found in sorted list", id)
}

func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}
