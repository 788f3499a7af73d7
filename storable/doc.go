// Bidirectional transform between live request payloads and storable records.
/*
An in-memory request payload may be plain text, a binary blob, or a multipart
container mixing text and file fields. None of those survive a trip through a
text-oriented document store as-is. This package converts a request envelope's
live payload into plain-data records (data urls and part record lists) before
storage and rebuilds the original runtime shape on load, losslessly: field
order, per-field binary/text classification, and file name metadata all round
trip.

The engine holds no state and performs no I/O of its own beyond reading blob
content at encode time. Persistence and transport are the caller's problem;
every operation here takes an envelope and returns a transformed envelope.

Encode direction: ToStorable -> EncodeForm -> EncodePart -> dataurl.Encode.
Restore direction is the mirror, and is fully synchronous.
*/
package storable
