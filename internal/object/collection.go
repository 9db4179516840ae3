package object

// Add appends an object to a collection
func Add(objects *[]*Object, obj *Object) {
	*objects = append(*objects, obj)
}

// Remove removes an object from a collection by identity.
// Returns true if the object was a member.
func Remove(objects *[]*Object, obj *Object) bool {
	for i, o := range *objects {
		if o == obj {
			*objects = append((*objects)[:i], (*objects)[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the exact object is in the collection
func Contains(objects []*Object, obj *Object) bool {
	for _, o := range objects {
		if o == obj {
			return true
		}
	}
	return false
}

// Find returns the first object whose name equals name.
// Names are canonical, so the comparison is exact.
func Find(objects []*Object, name string) (*Object, bool) {
	for _, o := range objects {
		if o != nil && o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// Names returns the names of the objects in collection order
func Names(objects []*Object) []string {
	names := make([]string, len(objects))
	for i, o := range objects {
		names[i] = o.Name
	}
	return names
}
