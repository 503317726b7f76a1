// Package graph draws small undirected graphs as text.
//
// Nodes of an adjacency matrix are placed evenly on a circle inside a
// fixed-size canvas (40x20 by default), every connected pair is joined with a
// Bresenham line of '*' cells, and each node is stamped with "(index)" on top
// of the edges:
//
//	          (1)********(0)
//
// Both triangles of the matrix are read, so an edge marked only in the lower
// triangle is still drawn. Writes that fall outside the canvas are dropped
// rather than reported. A canvas too small to keep the layout margin is a
// configuration error (errors.ErrViewport).
package graph
