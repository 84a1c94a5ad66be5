// Package scene provides the retained scene graph the animation core poses
// and the renderer draws: transform nodes, geometry and flat materials.
package scene

import (
	"github.com/Faultbox/seascape/pkg/math"
)

// Node is a transform in the scene tree, optionally carrying a mesh.
// Rotation holds XYZ-ordered Euler angles in radians.
type Node struct {
	Name     string
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
	Mesh     *Mesh
	Children []*Node
}

// NewNode creates an empty node with unit scale.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Scale: math.Uniform(1),
	}
}

// NewMeshNode creates a node that draws mesh.
func NewMeshNode(name string, mesh *Mesh) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	return n
}

// Add appends children to the node.
func (n *Node) Add(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// LocalMatrix returns the node's transform relative to its parent.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// Walk visits n and every descendant depth-first, passing each node's world matrix.
func (n *Node) Walk(fn func(node *Node, world math.Mat4)) {
	n.walk(math.Identity(), fn)
}

func (n *Node) walk(parent math.Mat4, fn func(*Node, math.Mat4)) {
	world := parent.Mul(n.LocalMatrix())
	fn(n, world)
	for _, child := range n.Children {
		child.walk(world, fn)
	}
}

// Find returns the first node named name in the subtree, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// MeshCount returns how many nodes in the subtree carry a mesh.
func (n *Node) MeshCount() int {
	count := 0
	n.Walk(func(node *Node, _ math.Mat4) {
		if node.Mesh != nil {
			count++
		}
	})
	return count
}
