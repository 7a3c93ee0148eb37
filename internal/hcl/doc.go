// Package hcl provides the concrete HCL implementation of the
// config.Loader interface. It discovers .hcl files, parses `component` and
// `speeds` blocks, and translates them into the format-agnostic model.
package hcl
