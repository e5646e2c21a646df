// Package cli implements the shopkeeper command surface with cobra.
// Commands resolve configuration explicitly, open the store, delegate
// to the catalog/order/report layers, and format output as text or a
// JSON envelope. Exit codes: 0 success, 1 domain failure, 2 command
// error.
package cli
