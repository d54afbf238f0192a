// Package recording keeps a hash-chained log of the fragments a sink received.
package recording

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Record is one received fragment. Each record's hash covers its data and
// its parent's hash, so a recording can only verify in the order it was
// received.
type Record struct {
	// Seq is the 0-based position in the recording.
	Seq int `json:"seq"`

	// Hash is the chained identifier (SHA-256, hex-encoded).
	Hash string `json:"hash"`

	// ParentHash links to the previous record. Nil for the first record.
	ParentHash *string `json:"parent_hash"`

	Data       string    `json:"data"`
	ReceivedAt time.Time `json:"received_at"`
}

type input struct {
	Data   string `json:"data"`
	Parent string `json:"parent,omitempty"`
}

// NewRecord creates the record that follows parent.
func NewRecord(data string, parent *Record, at time.Time) *Record {
	r := &Record{
		Data:       data,
		ReceivedAt: at,
	}

	if parent != nil {
		r.Seq = parent.Seq + 1
		r.ParentHash = &parent.Hash
	}

	r.Hash = r.computeHash()
	return r
}

func (r *Record) computeHash() string {
	i := input{Data: r.Data}
	if r.ParentHash != nil {
		i.Parent = *r.ParentHash
	}

	data, err := json.Marshal(i)
	if err != nil {
		panic("failed to marshal hash input: " + err.Error())
	}

	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Verify checks that records form an unbroken chain starting at sequence 0.
func Verify(records []*Record) error {
	var parent *Record
	for i, r := range records {
		if r.Seq != i {
			return fmt.Errorf("record %d: sequence is %d", i, r.Seq)
		}
		switch {
		case parent == nil && r.ParentHash != nil:
			return fmt.Errorf("record %d: first record has a parent", i)
		case parent != nil && (r.ParentHash == nil || *r.ParentHash != parent.Hash):
			return fmt.Errorf("record %d: parent does not match record %d", i, i-1)
		}
		if r.computeHash() != r.Hash {
			return fmt.Errorf("record %d: hash mismatch", i)
		}
		parent = r
	}
	return nil
}

// Gaps returns the time between consecutive records.
func Gaps(records []*Record) []time.Duration {
	if len(records) < 2 {
		return nil
	}
	gaps := make([]time.Duration, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		gaps = append(gaps, records[i].ReceivedAt.Sub(records[i-1].ReceivedAt))
	}
	return gaps
}
