// Package catalog holds the registry of component definitions that the
// resolution engine queries. Registration order doubles as the acyclicity
// guarantee: a component may only reference ingredients that are already
// registered, so the ingredient graph is a DAG by construction and no
// cycle detection is needed at query time.
package catalog
