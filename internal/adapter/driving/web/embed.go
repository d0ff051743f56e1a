package web

import "embed"

// StaticFS holds the embedded static assets (page stylesheet and clipboard script).
//
//go:embed static/*
var StaticFS embed.FS
