// SPDX-License-Identifier: MIT

// Package report formats mode solutions and residual profiles.
//
// Text output keeps the historical line format
//
//	Modo TE 0: Angulo optimo = 75.033682, n efectivo = 1.449117
//
// with the angle unit chosen by the caller. Tables can also be written as CSV.
// Residual profiles render as static plots (gonum/plot; PNG, SVG, PDF, ...)
// or as an interactive HTML chart (go-echarts).
//
// NaN samples are dropped before plotting; a profile with no finite sample
// contributes nothing.
package report
