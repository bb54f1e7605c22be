// Package archive persists validation runs in SQLite so downstream tooling
// can diff runs over time. Archiving is an explicit export surface, enabled
// by configuration; a run without an archive path never touches a database.
package archive
