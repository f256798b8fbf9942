package beverage

// Milk adds milk to the wrapped beverage.
type Milk struct {
	beverage Beverage
}

// NewMilk wraps b with milk.
func NewMilk(b Beverage) *Milk {
	return &Milk{beverage: b}
}

func (m *Milk) Description() string { return m.beverage.Description() + ", Milk" }
func (m *Milk) Cost() int64         { return m.beverage.Cost() + 100 }

// Sugar adds sugar to the wrapped beverage.
type Sugar struct {
	beverage Beverage
}

// NewSugar wraps b with sugar.
func NewSugar(b Beverage) *Sugar {
	return &Sugar{beverage: b}
}

func (s *Sugar) Description() string { return s.beverage.Description() + ", Sugar" }
func (s *Sugar) Cost() int64         { return s.beverage.Cost() + 50 }

// WhippedCream tops the wrapped beverage with whipped cream.
type WhippedCream struct {
	beverage Beverage
}

// NewWhippedCream wraps b with whipped cream.
func NewWhippedCream(b Beverage) *WhippedCream {
	return &WhippedCream{beverage: b}
}

func (w *WhippedCream) Description() string { return w.beverage.Description() + ", Whipped Cream" }
func (w *WhippedCream) Cost() int64         { return w.beverage.Cost() + 150 }

// Condiment is a decorator kind. Decorate wraps a beverage with it.
type Condiment interface {
	Decorate(b Beverage) Beverage
}

// CondimentFunc adapts an ordinary constructor to the Condiment interface.
type CondimentFunc func(b Beverage) Beverage

// Decorate calls f(b).
func (f CondimentFunc) Decorate(b Beverage) Beverage {
	return f(b)
}

// Built-in condiments.
var (
	WithMilk         Condiment = CondimentFunc(func(b Beverage) Beverage { return NewMilk(b) })
	WithSugar        Condiment = CondimentFunc(func(b Beverage) Beverage { return NewSugar(b) })
	WithWhippedCream Condiment = CondimentFunc(func(b Beverage) Beverage { return NewWhippedCream(b) })
)

// Wrap applies condiments to b in order: the first condiment is the
// innermost wrapper, so its label appears first after the base description.
// Wrap with no condiments returns b itself.
func Wrap(b Beverage, condiments ...Condiment) Beverage {
	for _, c := range condiments {
		b = c.Decorate(b)
	}
	return b
}
