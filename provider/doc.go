// Package provider implements the registry through which declarative
// construction obtains non-parametric building blocks.
//
// A Registry[T] maps a type name ("operator.matrix") to a constructor and a
// default configuration. Create merges the caller's configuration over the
// defaults and runs the constructor; DefaultConfig and Available let callers
// discover what can be built. Registries are safe for concurrent use and
// start no goroutines.
//
//	reg := provider.NewRegistry[Op]("operators", provider.WithLogger(log))
//	reg.MustRegister("operator.matrix", newMatrixOp, defaults)
//	op, err := reg.Create("operator.matrix", cfg)
package provider
