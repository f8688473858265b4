// Package writers turns neighborhoods and seed hits into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV/JSON/JSONL/msgpack).
//   • neighborhood stays domain-only; pipeline stays orchestration-only.
//   • JSON/JSONL/msgpack go through pkg/api (v1) for a stable wire format.
package writers
