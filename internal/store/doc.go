// Package store provides durable SQLite-backed storage for the shop:
// schema management, catalog CRUD for products and customers, and the
// transaction hook the order engine builds on.
//
// Every catalog operation is a single statement and individually atomic.
// The only multi-statement transaction in the system lives in the order
// engine, which obtains it through BeginTx.
package store
