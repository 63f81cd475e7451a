package badbets

import (
	"fmt"
	"io"
	"slices"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ledgerDocument is the persisted shape of a Ledger.
type ledgerDocument struct {
	Name        string `json:"name"`
	Outstanding []Bet  `json:"bets_outstanding"`
	Settled     []Bet  `json:"bets_settled"`
}

// DecodeLedger reads a ledger document from r.
//
// Every bet goes through Ledger.Insert: it is validated, gets an id if it has
// none, and lands in the collection matching its result whatever list it was
// read from.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var doc ledgerDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	ledger := NewLedger(doc.Name)
	for i, b := range slices.Concat(doc.Outstanding, doc.Settled) {
		if _, err := ledger.Insert(b); err != nil {
			return nil, fmt.Errorf("invalid bet #%d settling on %v: %w", i+1, b.Settles, err)
		}
	}
	return ledger, nil
}

// EncodeLedger writes the ledger document to w, each list in settlement order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	doc := ledgerDocument{
		Name:        ledger.Name(),
		Outstanding: slices.Collect(ledger.Outstanding()),
		Settled:     slices.Collect(ledger.Settled()),
	}
	// Empty lists rather than null, readers of the original format expect sequences.
	if doc.Outstanding == nil {
		doc.Outstanding = []Bet{}
	}
	if doc.Settled == nil {
		doc.Settled = []Bet{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode ledger %q: %w", ledger.Name(), err)
	}
	return nil
}
