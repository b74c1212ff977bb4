package domain

import "strings"

// FilterCriteria narrows a product collection. Empty sets place no
// restriction on their dimension; a MaxPrice of zero or less means no
// price ceiling. All active dimensions must match (logical AND).
type FilterCriteria struct {
	Query      string
	Brands     []string
	Memory     []string
	Processors []string
	MaxPrice   float64
}

// Matches reports whether p satisfies every active criterion.
func (c FilterCriteria) Matches(p Product) bool {
	if c.Query != "" {
		q := strings.ToLower(c.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) &&
			!strings.Contains(strings.ToLower(p.Processor), q) {
			return false
		}
	}
	if len(c.Brands) > 0 && !contains(c.Brands, p.Brand) {
		return false
	}
	if len(c.Memory) > 0 && !contains(c.Memory, p.Memory) {
		return false
	}
	if len(c.Processors) > 0 {
		any := false
		for _, proc := range c.Processors {
			if strings.Contains(p.Processor, proc) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	if c.MaxPrice > 0 && (p.Price < 0 || p.Price > c.MaxPrice) {
		return false
	}
	return true
}

// FilterProducts returns the subsequence of products matching c, in
// input order. The input slice is never mutated.
func FilterProducts(products []Product, c FilterCriteria) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilterOptions lists the distinct facet values present in a catalog,
// in first-seen order, for populating filter controls.
type FilterOptions struct {
	Brands     []string `json:"brands"`
	Memory     []string `json:"ram"`
	Processors []string `json:"processors"`
}

func CollectFilterOptions(products []Product) FilterOptions {
	var opts FilterOptions
	seenBrand := map[string]bool{}
	seenMemory := map[string]bool{}
	seenProc := map[string]bool{}
	for _, p := range products {
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			opts.Brands = append(opts.Brands, p.Brand)
		}
		if !seenMemory[p.Memory] {
			seenMemory[p.Memory] = true
			opts.Memory = append(opts.Memory, p.Memory)
		}
		if !seenProc[p.Processor] {
			seenProc[p.Processor] = true
			opts.Processors = append(opts.Processors, p.Processor)
		}
	}
	return opts
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
