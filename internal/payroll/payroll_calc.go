package payroll

// The pay model is deliberately simple: a fixed 30-day month for pro-ration
// and one flat tax rate. Calendar-aware day counting is out of scope, so the
// result is an approximation for months that are not 30 days long.
const (
	DaysPerMonth = 30
	TaxRate      = 0.15
)

// Breakdown is the gross/tax/net split for one employee. Values are not
// rounded here; presentation formats to two decimals.
type Breakdown struct {
	Gross float64 `json:"gross"`
	Tax   float64 `json:"tax"`
	Net   float64 `json:"net"`
}

// Compute pro-rates the monthly salary over days worked and applies the flat
// tax. It performs no validation: negative inputs are the caller's problem,
// mirroring the store contract.
func Compute(monthlySalary float64, daysWorked int) Breakdown {
	gross := (monthlySalary / DaysPerMonth) * float64(daysWorked)
	tax := TaxRate * gross
	return Breakdown{
		Gross: gross,
		Tax:   tax,
		Net:   gross - tax,
	}
}
