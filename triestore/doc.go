// Package triestore loads serialized code point tries from a local directory
// or an Azure blob container and keeps the decoded tries in a shared cache.
//
// Stored bytes may be any of the cptrie containers (CPT1, ICU Tri3) or the
// CBOR record of CBORCodec, optionally xz compressed. A BLAKE3 digest of the
// uncompressed container can be pinned with WithDigest.
package triestore
