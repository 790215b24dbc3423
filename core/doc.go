// Package core defines the shared types used across the proplog library.
//
// It provides the Level type for severity ordering, the Rule type that
// pairs a display tag with a minimum level, and the Table type that maps
// dotted-name prefixes to rules. Table.Match implements the
// longest-prefix resolution that the registry package builds on.
//
// A Table is produced once by the config package and treated as deeply
// immutable afterwards. Resolution is therefore a pure function of the
// name and the table and runs without locking.
package core
