/*
Package ports defines the driven ports (interfaces) for the Strategos engine.

These interfaces decouple the solver core from external implementations,
allowing plans to be cached in various storage backends without the core
knowing about them.
*/
package ports
