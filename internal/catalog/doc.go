// Package catalog defines the domain types shared by the storage,
// order, and reporting layers. Plain structs only; all behavior lives
// in the layers that operate on them.
package catalog
