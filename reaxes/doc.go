// Package reaxes maps histogram names to axis definitions through a table of
// regular expressions.
//
// A table is read from a small text format, one entry per pattern:
//
//	# comments run to the end of the line
//	pt_.*      { 10: 0 200 }          # uniform: nbins: min max
//	eta        { -2.5 -1.5 0 1.5 2.5 } # explicit edges
//
// Patterns are POSIX extended regular expressions matched against the whole
// name. Lookup returns the axis of the first entry, in file order, whose
// pattern matches. The same table can also be written as YAML, see ParseYAML.
package reaxes
