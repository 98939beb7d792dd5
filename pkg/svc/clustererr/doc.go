// Package clustererr provides the error taxonomy shared by the cluster lifecycle components.
//
// Configuration and prerequisite errors abort a workflow before any side effect happens.
// External command failures abort the remaining pipeline without undoing completed steps.
// Best-effort failures are reported as warnings and never returned to the caller.
package clustererr
