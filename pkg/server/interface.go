/*
Package server implements msgpack IPC for the word puzzle solver.

The server reads a stream of msgpack encoded requests from stdin and writes one
msgpack response per request to stdout. Requests are processed in order, one
at a time, with timing info included in responses.

# IPC

Every request names a mode and carries the fields that mode needs:

	{"id": "req_001", "m": "lookup", "p": "c_mp_t_r"}
	{"id": "req_002", "m": "jumble", "a": "tmpcreou", "f": "c_m"}
	{"id": "req_003", "m": "anagram", "a": "inlets"}
	{"id": "req_004", "m": "regex", "p": "^c.t$", "t": "feline"}
	{"id": "req_005", "m": "define", "p": "cat"}
	{"id": "req_006", "m": "thesaurus", "t": "feline"}

The server responds with the matching entries in dictionary order:

	{"id": "req_001", "r": ["computer"], "c": 1, "t": 145}

Jumble responses also carry the rows of the letter circle in "g". "c" is the
number of matches before the limit is applied and "t" the time taken in
microseconds.

A request the solver rejects gets an error instead:

	{"id": "req_007", "e": "invalid pattern: ...", "c": 400}

Requests without an id are given a random one, which the response echoes.
*/
package server

// Modes accepted in SolveRequest.Mode.
const (
	ModeLookup    = "lookup"
	ModeJumble    = "jumble"
	ModeAnagram   = "anagram"
	ModeRegex     = "regex"
	ModeDefine    = "define"
	ModeThesaurus = "thesaurus"
)

// SolveRequest - a single puzzle query
type SolveRequest struct {
	ID      string `msgpack:"id"`
	Mode    string `msgpack:"m"`
	Pattern string `msgpack:"p,omitempty"`
	Letters string `msgpack:"a,omitempty"`
	Found   string `msgpack:"f,omitempty"`
	Target  string `msgpack:"t,omitempty"`
	Subset  bool   `msgpack:"x,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
}

// SolveResponse - entries found for a request
type SolveResponse struct {
	ID        string   `msgpack:"id"`
	Results   []string `msgpack:"r"`
	Grid      []string `msgpack:"g,omitempty"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// SolveError holds basic error information for rejected requests
type SolveError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// Error codes sent in SolveError.
const (
	CodeBadRequest = 400
	CodeInternal   = 500
)
