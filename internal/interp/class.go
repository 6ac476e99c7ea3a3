package interp

// ClassObject is runtime class metadata: its name, its own method table,
// and an optional superclass link walked for inherited method lookup
// (spec §8 "Method resolution order").
type ClassObject struct {
	Name       string
	Superclass *ClassObject
	Methods    map[string]*FunctionObject
}

func (c *ClassObject) Type() string   { return "CLASS" }
func (c *ClassObject) String() string { return c.Name }

// FindMethod looks up name on c, then walks the superclass chain.
func (c *ClassObject) FindMethod(name string) (*FunctionObject, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of the init method if one exists, else 0 (spec §4.5
// "ClassObject as callable").
func (c *ClassObject) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh Instance and, if an init method exists, binds
// and invokes it for its side effects before returning the instance.
func (c *ClassObject) Call(i *Interpreter, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(i, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object: a reference to its class plus its own
// field map. Fields shadow methods (spec §4.5 Get).
type Instance struct {
	Class  *ClassObject
	Fields map[string]Value
}

func (o *Instance) Type() string   { return o.Class.Name }
func (o *Instance) String() string { return o.Class.Name + " instance" }

// Get resolves a property: own field first, then a bound method walking
// the superclass chain.
func (o *Instance) Get(name string) (Value, bool) {
	if v, ok := o.Fields[name]; ok {
		return v, true
	}
	if m, ok := o.Class.FindMethod(name); ok {
		return m.Bind(o), true
	}
	return nil, false
}

// Set inserts or overwrites a field on the instance.
func (o *Instance) Set(name string, val Value) {
	o.Fields[name] = val
}
