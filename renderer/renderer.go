// Package renderer turns shop data into markdown for terminal display.
package renderer

import (
	"fmt"
	"time"

	"minimarket"
)

const dateFormat = "2006-01-02 15:04"

// money formats a monetary value in the report currency.
func money(m minimarket.Money, currency string) string {
	return m.Display(currency)
}

// when formats a timestamp for tables.
func when(t time.Time) string { return t.Format(dateFormat) }

// shortID keeps the tail of an id, enough to tell records apart on screen.
func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}

// customer names the buyer, with a default for anonymous sales.
func customer(name string) string {
	if name == "" {
		return "Walk-in"
	}
	return name
}

func count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
