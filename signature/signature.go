package signature

import (
	"github.com/Brainrotlang/brainrot/object"
)

// A Parameter is one formal parameter of a function: its name, its declared
// type, and any modifiers it was declared with.
type Parameter struct {
	VarName string
	VarType object.ObjectType
	Mods    object.Modifiers
}

type Signature []Parameter

func (s Signature) String() (result string) {
	for _, v := range s {
		if result != "" {
			result = result + ", "
		}
		result = result + v.VarType.String() + " " + v.VarName
	}
	result = "(" + result + ")"
	return
}
