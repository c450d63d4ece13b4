// Package repository holds the SQL that reads and writes domain records.
//
// Repositories return raw driver errors; a missing row is wrapped as
// "...table:<name>: no rows in result set" so sqlerr can name the entity.
package repository
