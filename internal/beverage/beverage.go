// Package beverage defines priced, describable drinks and the condiment
// decorators that extend them.
// A decorator owns exactly one wrapped Beverage and computes its own
// description and cost by delegating to it, so decorators stack in any
// order and any quantity.
package beverage

// Beverage is anything that can be described and priced.
// Costs are whole tenge.
type Beverage interface {
	Description() string
	Cost() int64
}

// Espresso is a base product.
type Espresso struct{}

// Description returns "Espresso".
func (Espresso) Description() string { return "Espresso" }

// Cost returns the base price of an espresso.
func (Espresso) Cost() int64 { return 500 }

// Tea is a base product.
type Tea struct{}

// Description returns "Tea".
func (Tea) Description() string { return "Tea" }

// Cost returns the base price of a tea.
func (Tea) Cost() int64 { return 300 }
