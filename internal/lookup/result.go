package lookup

// Request carries the identifying parameters for a single nickname lookup.
// Server is empty for single-server games.
type Request struct {
	Game      string
	AccountID string
	Server    string
}

// FailureReason classifies why a lookup produced no display name.
type FailureReason string

const (
	// ReasonBadRequest marks requests rejected before any upstream call.
	ReasonBadRequest FailureReason = "bad_request"
	// ReasonNotFound covers every upstream failure mode: network errors,
	// non-2xx statuses, unparseable bodies, and absent usernames.
	ReasonNotFound FailureReason = "not_found"
)

// Result is the normalized contract every adapter must produce. Callers never
// see provider-specific fields; a result is either a success carrying the
// resolved display name or a failure carrying a reason.
type Result struct {
	Success     bool
	Game        string
	AccountID   string
	Server      string
	Region      string
	DisplayName string
	Reason      FailureReason
}

// Found builds a success result for the given request.
func Found(title string, req Request, region, name string) Result {
	return Result{
		Success:     true,
		Game:        title,
		AccountID:   req.AccountID,
		Server:      req.Server,
		Region:      region,
		DisplayName: name,
	}
}

// NotFound builds the uniform upstream-failure result.
func NotFound() Result {
	return Result{Reason: ReasonNotFound}
}

// BadRequest builds the caller-error result.
func BadRequest() Result {
	return Result{Reason: ReasonBadRequest}
}
