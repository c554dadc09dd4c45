// Package engine assembles parsed documents into instances. The Parser
// façade owns the configuration, metrics, and optional document cache;
// each call runs an isolated parsing session whose transient state is
// released on every exit path.
package engine
