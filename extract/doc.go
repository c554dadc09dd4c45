// Package extract walks the parsed element tree and produces facts. Each
// candidate element is visited exactly once in document order; context
// and unit references are resolved by O(1) identifier lookup against the
// maps built during resolution, never by re-scanning the tree.
package extract
