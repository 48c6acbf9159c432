// Package cli implements the gfxskin command-line interface.
//
// The commands are:
//   - render: draw a skin file to a PNG, optionally re-rendering whenever
//     the file changes
//   - info: list the meters of a skin with their bounds
//   - hit: report the meter at a point of the rendered skin
//
// All commands accept --verbose (-v) for debug logging. The console logger
// is also installed as the gfx library logger, so renderer diagnostics
// appear alongside command output.
package cli
