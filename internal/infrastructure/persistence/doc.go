// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer over PostgreSQL or SQLite and owns the
// multi-table transactions of the admin API (user and event cascades,
// force logout, payout creation).
package persistence
