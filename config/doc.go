// Package config reads widget skin configuration: sections of string
// keys, the tokenizers used to split option values, and the number, formula
// and color parsers used by meters.
//
// Skins are TOML files. Each table is a section; values are read back as
// strings so meters can tokenize them, and #Name# references are replaced
// from the [Variables] section:
//
//	[Variables]
//	Accent = "255,128,0"
//
//	[Box]
//	Meter = "Shape"
//	Shape = "Rectangle 0,0,(20*5),50 | FillColor #Accent#"
//
// All parsers are total: malformed input yields the caller's default.
package config
