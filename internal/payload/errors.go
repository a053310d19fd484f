package payload

import "github.com/rotisserie/eris"

// Pipeline stage errors, in the order the stages run. Each stage fails with a
// distinct sentinel so operators can tell "no script" from "broken JSON" from
// "JSON shape changed". All are fatal to the conversion; per-entry anomalies
// during decoding are logged at debug level instead.
var (
	// ErrExtractFailed means the initialization marker was present but no
	// complete balanced array could be isolated after it.
	ErrExtractFailed = eris.New("payload: could not isolate initialization array")

	// ErrParseFailed means the extracted slice is not valid JSON.
	ErrParseFailed = eris.New("payload: initialization array is not valid JSON")

	// ErrSignatureNotFound means no node in the parsed tree matches the list
	// signature. The usual cause is an upstream payload format change, not
	// malformed input.
	ErrSignatureNotFound = eris.New("payload: no node matches the list signature (payload format may have changed)")

	// ErrStructureTooDeep means the tree exceeds the defensive nesting bound.
	ErrStructureTooDeep = eris.New("payload: structure nested too deeply")

	// ErrListNameMissing means the matched list array has no usable name.
	ErrListNameMissing = eris.New("payload: list name missing or blank")
)
