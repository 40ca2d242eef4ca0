package delivery

// Task is one unit of outbound HTTP delivery work: a serialized payload bound
// for a target URL, with an optional credential sent as X-API-Key. Tasks have
// no identity beyond the enqueuing call and run to terminal success or retry
// exhaustion.
type Task struct {
	Channel string
	TeamID  string
	URL     string
	APIKey  string
	Payload []byte
}
