// Package tasklog provides Task, a deferred, composable computation
// parameterized over a domain error type and a success type, together with a
// structured, hierarchical logging surface that travels with it.
//
// A Task never runs on its own: Perform opens a set of Sinks (Terminal,
// File, Custom, or None), builds an ambient Key carrying namespace, context
// pairs and the open sinks, runs the Task under it, and guarantees every
// sink's shutdown sequence runs exactly once before returning. Log calls
// made anywhere inside the Task — directly or through a combinator like
// WithContext, OnOk or OnErr — fan out to every open sink without ever
// blocking the Task itself; a full sink queue drops the entry rather than
// stall the caller.
//
// # Building a Task
//
// Succeed and Fail construct the base cases. AndThen, MapTask, OnError,
// MapError and Sequence compose them. Map2 through Map6 combine independent
// tasks positionally, sequentially by default or concurrently via the
// *Par variants, both preserving "leftmost error wins" semantics. WithContext
// scopes a namespace and a set of context pairs onto a sub-task without
// touching the caller's own Key.
//
// # Running a Task
//
// Perform is the only way to actually execute a Task:
//
//	result, domainErr, err := tasklog.Perform(
//		ctx,
//		[]tasklog.Sink{tasklog.Terminal(), tasklog.File("/var/log/app.log")},
//		myTask,
//	)
//
// Exit is a convenience for running a one-off Task against a single None
// sink, discarding logging entirely.
package tasklog
