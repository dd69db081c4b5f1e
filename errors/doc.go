/*
Package errors implements custom error interfaces for signet.

The package is built around the idea of a root error. A root error is an
error instance declared with a unique code. All errors created during
runtime should wrap one of the root errors, adding context with Wrap.
This allows testing an error kind with Is regardless of how many layers
of context were added on top, and lets the host map any error to a stable
numeric code for its clients.
*/
package errors
