package deposit

type IBuilder interface {
	// Build re-derives the exact on-chain deposit from the user's inputs.
	// Display values from the reconciliation engine are never reused.
	Build(req Request) (*Params, error)
}
