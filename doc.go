/*
Package query implements a compact, SQL-flavored mini-language for
querying hierarchical data — trees of mappings, sequences, and scalar
leaves, typically decoded from JSON, YAML, or CSV by the factory package.

A caller poses a lookup (a key-matching pattern, optionally constrained by
a value predicate) plus an optional select-statement (column projection
plus a boolean WHERE expression). Find walks the tree depth-first,
collects every key satisfying the lookup, filters the enclosing record
through the WHERE predicate, projects the requested columns, and returns
a flat, order-stable sequence of results.

Lookup patterns support plain text, wildcard, and regular-expression key
and value matching (with case-insensitive variants), plus a library of
named value predicates: network-address and interface-name shapes,
emptiness and truth checks, and numeric/version/datetime comparators.

Select-statements follow the grammar:

	[SELECT column_list] [WHERE expression] | WHERE expression | column_list [WHERE expression]

where column_list is `*`, `__ALL__`, or a comma-separated identifier
list, and expression is a chain of `key op value` atoms joined by the
left-associative connectives and_/or_ (aliased &&/||).

Example: Find(tree, "name=_iwildcard(*abc*)", "src")
*/
package query
