// Package rta computes response-time style fixed points for a small set of
// periodic tasks.
//
// Tasks are ordered by priority: index 0 has the highest priority. For task i
// the solver looks for the smallest v such that
//
//	v = Cost[i] + sum over j > i of ceil(v / Period[j]) * Cost[j]
//
// starting from an under-estimate and substituting until the value stops
// changing. A Solver can be observed through hooks, one invocation per pass,
// which is how the tracers in package tracing record the iteration history.
package rta
