package obj

import "go.jetify.com/typeid/v2"

const PrefixObject = "obj"

// NewObjectID returns a sortable, prefixed identifier such as obj_01h4...
func NewObjectID() string {
	return typeid.MustGenerate(PrefixObject).String()
}
