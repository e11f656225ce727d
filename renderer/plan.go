package renderer

import (
	"github.com/etnz/rebalance"
)

// Plan is the rebalance plan as rendered in reports.
// Numbers keep their exact decimal types so they come with their own
// renderers (String, SignedString).
type Plan struct {
	// TotalValue is the value of everything held, at the plan prices.
	TotalValue rebalance.Money `json:"totalValue"`
	// Orders holds one entry per holding, in portfolio order.
	Orders []Order `json:"orders"`
}

// Order is a single line of the plan.
type Order struct {
	ID          string             `json:"id"`
	Side        string             `json:"side"`
	Price       rebalance.Money    `json:"price"`
	Held        rebalance.Quantity `json:"held"`
	Target      rebalance.Quantity `json:"target"`
	TargetValue rebalance.Money    `json:"targetValue"`
	Change      rebalance.Quantity `json:"change"`
}

// NewPlan creates the report view of p.
func NewPlan(p rebalance.Plan) *Plan {
	r := &Plan{
		TotalValue: p.TotalValue,
		Orders:     make([]Order, 0, len(p.Orders)),
	}
	for _, o := range p.Orders {
		r.Orders = append(r.Orders, Order{
			ID:          o.ID,
			Side:        o.Side().String(),
			Price:       o.Price,
			Held:        o.Held,
			Target:      o.Target,
			TargetValue: o.TargetValue,
			Change:      o.Change,
		})
	}
	return r
}

// RenderPlan renders the plan to a markdown string.
func RenderPlan(p *Plan) string {
	return renderTemplate("plan", planMarkdownTemplate, p)
}

// RenderPlanHTML renders the plan to HTML.
func RenderPlanHTML(p *Plan) (string, error) {
	return ToHTML(RenderPlan(p))
}

// planMarkdownTemplate is the template for rendering a Plan in Markdown.
const planMarkdownTemplate = `# Rebalance Plan

Total Asset Value: **{{ .TotalValue }}**

| Holding | Price | Held | Target | Target Value | Change | Action |
|:---|---:|---:|---:|---:|---:|:---|
{{- range .Orders }}
| {{ .ID }} | {{ .Price }} | {{ .Held }} | {{ .Target }} | {{ .TargetValue }} | {{ .Change.SignedString }} | {{ .Side }} |
{{- end }}
`
