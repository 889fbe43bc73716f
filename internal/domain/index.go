package domain

// Latest is the "latest" auxiliary index record: the most recently
// emitted statement ID for a domain key.
type Latest struct {
	LatestID    string `json:"latest_id"`
	StatementID string `json:"statement_id"`
	Reason      string `json:"reason,omitempty"`
}

// References is the "references" auxiliary index record: the set of
// OOC statements (keyed by their own statementID) that reference an
// entity/person statement, alongside each referencing OOC's domain key.
type References struct {
	StatementID  string            `json:"statement_id"`
	ReferencesID map[string]string `json:"references_id"`
}

// Update is one pending fix-up in the "updates" auxiliary index: an OOC
// statement, identified by its current statementID, that must be
// rewritten once the finish phase runs.
type Update struct {
	ReferencingID string            `json:"referencing_id"`
	LatestID      string            `json:"latest_id"`
	Updates       map[string]string `json:"updates"`
}

// Exception is the "exceptions" auxiliary index record: the most
// recently active reporting exception for an LEI/category pair.
type Exception struct {
	LatestID    string `json:"latest_id"`
	StatementID string `json:"statement_id"`
	OtherID     string `json:"other_id"`
	Reason      string `json:"reason"`
	Reference   string `json:"reference,omitempty"`
	EntityType  string `json:"entity_type"`
}

// Run is one persisted entry in the "runs" ledger: the newest
// completed run for a stage determines the incremental window for the
// next run (spec §6 "Persistent state layout").
type Run struct {
	StageName      string `json:"stage_name"`
	StartTimestamp string `json:"start_timestamp"`
	EndTimestamp   string `json:"end_timestamp"`
}

// Index names used as the second argument to the cache facade's
// Get/Add/Delete/Stream operations.
const (
	IndexLatest     = "latest"
	IndexReferences = "references"
	IndexUpdates    = "updates"
	IndexExceptions = "exceptions"
)

// Statement store collection names.
const (
	CollectionEntity    = "entity"
	CollectionPerson    = "person"
	CollectionOwnership = "ownership"
)
