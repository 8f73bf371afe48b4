// Package domain contains the core business entities for formery:
// the author-facing form schema, the title numbering engine, and the
// response records exported to CSV. Domain types carry no external
// dependencies and perform no I/O.
package domain
