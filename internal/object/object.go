// Package object models the inert items that lie around the world and can be
// carried by the player.
package object

// Object is a named item. Its location is not stored here: an object lives in
// whichever container (a room or the inventory) currently references it.
type Object struct {
	Name        string // canonical uppercase noun, unique across the world
	Description string // one display line, e.g. "a set of keys"
	InitialRoom int    // room number the object starts in; only used at load time
}

// New creates an object
func New(name, description string, initialRoom int) *Object {
	return &Object{
		Name:        name,
		Description: description,
		InitialRoom: initialRoom,
	}
}

// String returns the object name, which is what presence lines print.
func (o *Object) String() string {
	return o.Name
}
