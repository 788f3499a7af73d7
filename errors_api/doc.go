/*
Error model definition and default error types for the stowtools ecosystem.

Services that store and restore request payloads should share a consistent set
of errors (and error communication conventions) between all services and
clients.

This module defines two main objects for handling errors:

• StowErrorType defines an error type.

• StowError is an instance of an error which contains a StowErrorType.

Default StowErrorType Variables

Several pointers to StowErrorType definitions are included in this package,
covering the failure kinds of the payload transform engine: blob read failures
during encode, data url format failures during restore, part-level and
envelope-level restore degradation, and unsupported payload variants.
*/
package errors_api
