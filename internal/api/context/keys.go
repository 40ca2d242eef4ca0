package context

type Key string

const (
	Claims Key = "claims"
	Team   Key = "team"
	Params Key = "params"
)
