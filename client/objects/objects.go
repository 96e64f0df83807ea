package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChild(id string) GameObject
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
}

// InitTree initializes obj and then every descendant, parents first.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return fmt.Errorf("failed to initialize object %s: %v", obj.GetID(), err)
	}
	for _, child := range snapshot(obj.GetChildren()) {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys every descendant of obj and then obj itself.
func DestroyTree(obj GameObject) error {
	for _, child := range snapshot(obj.GetChildren()) {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := obj.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy object %s: %v", obj.GetID(), err)
	}
	return nil
}

// UpdateTree updates obj and then its children. Children may remove
// themselves while being updated.
func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return fmt.Errorf("failed to update object %s: %v", obj.GetID(), err)
	}
	for _, child := range snapshot(obj.GetChildren()) {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws obj and then its children, so children end up on top.
func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}

func snapshot(children []GameObject) []GameObject {
	out := make([]GameObject, len(children))
	copy(out, children)
	return out
}
