package web

import "embed"

// StaticFS embeds the budget view served at the site root.
//
//go:embed static/*
var StaticFS embed.FS
