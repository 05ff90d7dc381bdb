// Package geoplot provides plotting helpers tailored to geoscience data,
// starting with rose diagrams for analysing direction distributions.
//
// A rose diagram is a polar histogram: directions are separated into bins
// of equal angular width and the number (or proportion) of entries falling
// into each bin is drawn as a bar pointing in the corresponding direction,
// so each bar looks like a petal in a rose.
//
// Datasets are go-gg tables (github.com/aclements/go-gg/table); rendering
// is delegated to gonum/plot and binning to gonum/stat. Diagrams follow
// the compass convention: zero degrees points North (up) and angles grow
// clockwise.
package geoplot
