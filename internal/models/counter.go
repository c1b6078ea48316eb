package models

// Counter stores the last issued value of one named sequence. The document
// is upserted on first use; the store's atomic increment guarantees that
// concurrent callers never observe the same value.
type Counter struct {
	ID  string `bson:"_id" json:"id"`
	Seq int64  `bson:"seq" json:"seq"`
}
