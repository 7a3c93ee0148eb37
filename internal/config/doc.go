// Package config defines the format-agnostic catalog model and the Loader
// interface for reading it from external sources. The model is the single
// source of truth for the catalog build in the app layer; the concrete HCL
// implementation lives in a separate package.
package config
