// Package config provides the hierarchical parameter tree used for
// declarative construction.
//
// A Tree maps dotted keys to raw string values:
//
//	name               = stationary diffusion
//	affine_part.type   = operator.matrix
//	component.0.type   = operator.matrix
//	component.0.matrix = [2 0; 0 2]
//	coefficient.0.expression = diffusion[0]
//	coefficient.0.diffusion  = 1
//
// Values are parsed on demand (GetInt, GetFloat, GetFloats, GetMatrix), and
// sub-trees are extracted with Sub. Trees load from and dump to YAML
// (gopkg.in/yaml.v3); nested mappings flatten to dotted keys and numeric
// sequences to "[a b]" / "[a b; c d]" literals.
//
// Overlay applies override layers built with spf13/viper (EnvOverlay,
// YAMLOverlay) to the values a tree already holds. LoadWithEnv combines Load
// with the environment layer.
//
// Every error wraps errs.ErrConfiguration.
package config
