// Package lib holds supporting infrastructure that doesn't belong to a
// single layer, such as the background job runner in lib/job.
package lib
