package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its proxy in the proximity space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Registered reports whether the proxy exists and sits in a space.
func (o *ObjectData) Registered() bool {
	return o.Object != nil && o.Space != nil
}

// CenterOn moves the proxy box so it is centered on p and refreshes its cells.
func (o *ObjectData) CenterOn(p Vector) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}
