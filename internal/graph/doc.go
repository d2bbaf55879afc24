// Package graph provides a small directed graph keyed by comparable node
// names, with the reachability and cycle queries needed to lint grammars.
//
// Nodes and successor lists keep insertion order, so every query returns the
// same result for the same sequence of AddNode/AddEdge calls.
//
// # Cycles
//
// Cycles returns the strongly connected components that contain a cycle:
// components of two or more nodes, and single nodes with a self edge. The
// search is Tarjan's algorithm, run from each node in insertion order.
package graph
