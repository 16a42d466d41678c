// Package enum defines the closed value sets used across linkhub.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeLight theme = iota
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type readiness -lower
type readiness int

const (
	readinessUninitialized readiness = iota
	readinessReady
)

//go:generate go run github.com/go-pkgz/enum@latest -type dbType -lower
type dbType int

const (
	dbTypeSQLite   dbType = iota // enum:alias=sqlite
	dbTypePostgres               // enum:alias=postgres
)

//go:generate go run github.com/go-pkgz/enum@latest -type storage -lower
type storage int

const (
	storageCookie storage = iota
	storageDB
)
