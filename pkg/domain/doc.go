/*
Package domain contains the core planning models for the Strategos engine.

It defines the fundamental entities of a typed STRIPS task, such as Types,
Objects, Predicates, Conditions, Action Schemas, and Plans. This package is
kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - Model: the action theory (types, predicates, action schemas).
  - Problem: a concrete instance (objects, initial atoms, goal condition).
  - Condition: a recursive boolean tree (atom, and, not, equality, quantifier).
  - Effect: add/delete directives plus forall/when conditional sub-effects.
  - Plan: the ordered ground-action sequence a solver returns.
*/
package domain
