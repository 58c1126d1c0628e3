package ledger

// Aggregate is a stateful entity keyed by an identity of type ID, mutated in
// place by transaction events and able to project a snapshot of type S.
//
// ApplyTransaction must leave the aggregate unchanged when it returns an
// error; callers rely on failed events having no partial effects. Snapshot is
// a pure read tagged with the owning identity.
//
// Construction from the first event is not part of the interface: a factory
// function of the same shape is handed to the Ledger store instead, and must
// never fail.
type Aggregate[ID comparable, TxID any, E any, S any] interface {
	ApplyTransaction(txID TxID, data E) error
	Snapshot(id ID) S
}
