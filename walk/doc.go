// Package walk implements depth-first traversals over a value.Graph rooted
// at a single node.
//
// What:
//
//   - Tree: pre-order walk that follows every dependency edge, so a node
//     reachable along two paths is visited twice, once under each parent.
//     This is the "usage context" view the renderer prints.
//   - TopologicalSort: each reachable node exactly once, every node after
//     all of its dependencies. Reversing it gives the order a reverse-mode
//     pass would process nodes in.
//
// Options:
//
//   - WithContext(ctx)      cancellation, checked once per visit.
//   - WithOnVisit(fn)       pre-order hook; error aborts the walk.
//   - WithOnExit(fn)        post-order hook; error aborts the walk.
//   - WithMaxDepth(limit)   do not descend below limit (0 = root only).
//
// Complexity:
//
//   - Tree:            Time O(P) where P is the number of root-to-node paths,
//     which can grow exponentially in the depth of a heavily shared DAG.
//   - TopologicalSort: Time O(V + E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil      graph pointer is nil
//   - ErrRootNotFound  root is not a node of the graph
//   - context.Canceled / DeadlineExceeded
//   - hook errors, wrapped with the visited ID
package walk
