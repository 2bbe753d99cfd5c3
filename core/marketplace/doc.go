// Package marketplace provides the HTTP plumbing shared by the seller API
// integrations: a JSON request helper with explicit transport timeouts and
// the error taxonomy that distinguishes connectivity failures from
// application-level rejections.
package marketplace
