// Rendering of storable payload records to and from document-store encodings.
/*
The transform engine in the storable package turns live request payloads into
plain-data records. This package is the boundary between those records and a
text-oriented document store: a single interface for serializing a record (or a
whole envelope) to whichever encoding the store speaks, so storage backends do
not have to call mimetype-specific methods explicitly.

Specific objectives

1. A store can persist records as JSON, BSON or YAML, and a client can request
records back in whichever encoding it is most comfortable with.

2. Blob values embedded in stored structures serialize as their data url form
in the json and bson renderings, so a record stays a plain-text document.

3. Encoding support is independent of storage backend. Adding an encoder to
this package upgrades every store and client built on it.

4. Developers can extend the engine with their own encoders for additional
content types.
*/
package encoding
