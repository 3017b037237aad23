// Package chatwire defines a validated data model for OpenAI-style chat
// completion exchange objects: messages, tool and function calls,
// completions, streaming chunks, and embeddings.
//
// Payloads produced by different providers share the same rough shape but
// disagree on details. This package decodes such payloads into strongly
// typed, role-aware values, validating them at construction time. Response
// types additionally support mapping-style access (Field, SetField,
// Contains, Get) over their declared fields, so code written against plain
// maps keeps working. See KeyedAccess.
//
// The package is a pure data model: it performs no I/O, holds no global
// state, and every value is safe for concurrent reads once constructed.
package chatwire
