package view

import "embed"

// StaticFS holds the stylesheet and the wasm loader script.
//
//go:embed static/*
var StaticFS embed.FS
