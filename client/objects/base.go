package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// BaseObject implements the tree plumbing of GameObject with no-op
// lifecycle methods. Concrete objects embed it and override what they need.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childStore
}

type NewBaseObjectOpts struct {
	// ZIndex orders the object among its siblings in a SortedZIndexObject.
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	if opts == nil {
		opts = &NewBaseObjectOpts{}
	}
	return &BaseObject{
		id:       id,
		zIndex:   opts.ZIndex,
		children: newChildStore(),
	}
}

func (o *BaseObject) Init() error               { return nil }
func (o *BaseObject) Destroy() error            { return nil }
func (o *BaseObject) Update() error             { return nil }
func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChild(id string) GameObject {
	return o.children.Get(id)
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.ordered
}

// AddChild initializes child's tree and appends it after the existing children.
func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

// RemoveChild destroys the child's tree and detaches it.
func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

// RemoveFromParent detaches the object from its parent, if it has one.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}

// childStore keeps children in insertion order with lookup by id.
type childStore struct {
	idxIDObjects map[string]GameObject
	ordered      []GameObject
}

func newChildStore() *childStore {
	return &childStore{
		idxIDObjects: make(map[string]GameObject),
		ordered:      make([]GameObject, 0),
	}
}

func (s *childStore) Get(id string) GameObject {
	return s.idxIDObjects[id]
}

func (s *childStore) Add(id string, obj GameObject) {
	s.idxIDObjects[id] = obj
	s.ordered = append(s.ordered, obj)
}

func (s *childStore) Remove(id string) {
	obj, ok := s.idxIDObjects[id]
	if !ok {
		return
	}
	delete(s.idxIDObjects, id)
	for i, o := range s.ordered {
		if o == obj {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			return
		}
	}
}
