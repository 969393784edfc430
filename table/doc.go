// Package table holds the column-oriented input of an analysis: named,
// typed columns of equal length, loaded from CSV or EDF or built in memory.
//
// [ResolveRoles] picks which column carries time and which carries
// amplitude, either from explicit names or by the usual recorder
// conventions.
package table
