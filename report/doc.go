// Package report renders search outcomes for people: a console summary
// (path, cost, expansion counts), a comparison table across strategies, and
// SVG plots of a waypoint route or of the whole adjacency network.
package report
