package model

// Version is populated by the linker at build time (see magefile.go).
var Version = "dev"
