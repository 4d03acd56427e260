// Package qap implements the Quadratic Arithmetic Program collaborator
// that the ceremony engine consumes: the univariate polynomial
// evaluator and the QAP constraint system itself. The ceremony engine
// depends only on the QAP and Univariate method sets below, treating
// both as external collaborators, but a concrete implementation lives
// here so the module is runnable and testable end to end.
package qap
