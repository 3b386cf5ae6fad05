// Package vdir reads and writes the vCard contact records that make up
// a contact directory (one .vcf file per contact).
//
// A card is a property list: named fields, each possibly repeated, in
// order. Cards without a formatted name or without any email address
// are valid; callers decide what to do with them.
package vdir

import (
	"fmt"
	"io"

	"github.com/emersion/go-vcard"
)

// Decode parses a single vCard from r.
//
// Repeated fields (EMAIL in particular) are preserved as an ordered
// sequence. The VERSION marker is not validated beyond being parseable.
func Decode(r io.Reader) (vcard.Card, error) {
	card, err := vcard.NewDecoder(r).Decode()
	if err != nil {
		return nil, fmt.Errorf("decode vcard: %w", err)
	}
	return card, nil
}

// Encode writes card to w as a single vCard. A card without a VERSION
// marker is written with one, on a copy: the caller's card is left
// untouched.
func Encode(w io.Writer, card vcard.Card) error {
	if card.Value(vcard.FieldVersion) == "" {
		versioned := make(vcard.Card, len(card)+1)
		for k, fields := range card {
			versioned[k] = fields
		}
		versioned.SetValue(vcard.FieldVersion, "4.0")
		card = versioned
	}
	if err := vcard.NewEncoder(w).Encode(card); err != nil {
		return fmt.Errorf("encode vcard: %w", err)
	}
	return nil
}

// New builds a card with the given formatted name, email address and
// unique identifier. Name and email may be empty (an address-only or
// name-only sender); uid must not be.
func New(name, email, uid string) vcard.Card {
	card := make(vcard.Card)
	if name != "" {
		card.AddValue(vcard.FieldFormattedName, name)
	}
	if email != "" {
		card.AddValue(vcard.FieldEmail, email)
	}
	card.AddValue(vcard.FieldUID, uid)
	card.SetValue(vcard.FieldVersion, "4.0")
	return card
}

// FullName returns the card's first formatted name, or "" if it has none.
func FullName(card vcard.Card) string {
	return card.Value(vcard.FieldFormattedName)
}

// Emails returns all EMAIL values in card order.
func Emails(card vcard.Card) []string {
	return card.Values(vcard.FieldEmail)
}

// UID returns the card's unique identifier, or "" if it has none.
func UID(card vcard.Card) string {
	return card.Value(vcard.FieldUID)
}
