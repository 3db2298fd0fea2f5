package object

// Modifiers are the declaration modifiers of a variable: deadass (const),
// nut (unsigned), schizo (volatile).
type Modifiers struct {
	IsConst    bool
	IsUnsigned bool
	IsVolatile bool
}

// Storage is one variable: its current value, its declared type, and its
// modifiers. Arrays keep an *Array in Obj and the element type in VarType.
type Storage struct {
	Obj     Object
	VarType ObjectType
	Mods    Modifiers
}

type AssignStatus int

const (
	AssignOk AssignStatus = iota
	AssignUndefined
	AssignConst
)

// Environment is one lexical scope. Scopes chain through Ext up to the
// global scope; a scope with FunctionBoundary set stops identifier lookup
// from crossing into the calling activation.
type Environment struct {
	store            map[string]*Storage
	Ext              *Environment
	FunctionBoundary bool
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]*Storage)}
}

func NewScope(parent *Environment) *Environment {
	return &Environment{store: make(map[string]*Storage), Ext: parent}
}

func NewFunctionScope(parent *Environment) *Environment {
	return &Environment{store: make(map[string]*Storage), Ext: parent, FunctionBoundary: true}
}

// Get resolves a name by walking the scope chain toward the root, stopping
// after it has checked a function-boundary scope.
func (e *Environment) Get(name string) (*Storage, bool) {
	storage, ok := e.store[name]
	if ok || e.Ext == nil || e.FunctionBoundary {
		return storage, ok
	}
	return e.Ext.Get(name)
}

// ExistsHere reports whether the name is declared in this scope itself,
// ignoring enclosing scopes. Used to reject same-scope redeclaration while
// still allowing shadowing.
func (e *Environment) ExistsHere(name string) bool {
	_, ok := e.store[name]
	return ok
}

// Declare adds a new variable to this scope. It fails if the name is
// already declared here.
func (e *Environment) Declare(name string, storage Storage) bool {
	if e.ExistsHere(name) {
		return false
	}
	e.store[name] = &storage
	return true
}

// Assign stores a new value in an existing variable, resolving the name
// with the same boundary rule as Get. Assignment to a deadass variable is
// rejected no matter how deeply the assignment is nested.
func (e *Environment) Assign(name string, val Object) AssignStatus {
	storage, ok := e.Get(name)
	if !ok {
		return AssignUndefined
	}
	if storage.Mods.IsConst {
		return AssignConst
	}
	storage.Obj = val
	return AssignOk
}

func (e *Environment) IsConstant(name string) bool {
	storage, ok := e.Get(name)
	return ok && storage.Mods.IsConst
}

// StringDumpVariables lists this scope's variables, for the REPL.
func (e *Environment) StringDumpVariables() string {
	result := ""
	for k, v := range e.store {
		result = result + k + " = " + v.Obj.Inspect(ViewLiteral) + "\n"
	}
	return result
}
