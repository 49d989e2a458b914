// Package scanner implements the driven.ProjectScanner port: file
// discovery, static import extraction and relative-specifier
// resolution.
//
// Scanning is split into three phases. Discovery walks the root and
// collects candidate files; it must finish before resolution so that
// relative specifiers can be checked against the complete file set.
// Parsing extracts raw import specifiers and is parallelised across
// files, since each file's parse result is write-once and independent.
// Resolution then runs sequentially over the sorted node list, which
// keeps the resulting graph independent of filesystem iteration order.
package scanner
