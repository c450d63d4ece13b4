// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// validated requests, services apply the domain rules, call the
// repositories and translate storage failures into client errors.
package service
