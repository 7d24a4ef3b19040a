// Package rules holds the static product rulebook and the market-wide
// scoring parameters. The default rulebook ships embedded in the binary and
// can be replaced per market with an external YAML file; nothing here is
// mutable after load.
package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/model"
)

//go:embed products.yaml
var defaultRulebook []byte

// ErrEmptyRulebook is returned when a rulebook document defines no products.
var ErrEmptyRulebook = errors.New("rules: rulebook defines no products")

type document struct {
	Products []model.ProductRule `yaml:"products"`
}

// Load parses a rulebook from YAML and validates it.
func Load(data []byte) ([]model.ProductRule, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("rules: parse rulebook: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, ErrEmptyRulebook
	}
	for _, p := range doc.Products {
		if err := validate(p); err != nil {
			return nil, err
		}
	}
	if err := coversPriorityOrder(doc.Products); err != nil {
		return nil, err
	}
	return doc.Products, nil
}

// LoadFile reads a rulebook from disk; an empty path loads the embedded
// default table.
func LoadFile(path string) ([]model.ProductRule, error) {
	if path == "" {
		return Load(defaultRulebook)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read rulebook %s: %w", path, err)
	}
	return Load(data)
}

// Default returns the embedded rulebook. Panics only if the embedded
// document itself is broken, which is a build defect.
func Default() []model.ProductRule {
	products, err := Load(defaultRulebook)
	if err != nil {
		panic(fmt.Sprintf("rules: embedded rulebook invalid: %v", err))
	}
	return products
}

func validate(p model.ProductRule) error {
	switch {
	case p.ID == "":
		return errors.New("rules: product without id")
	case p.Label == "":
		return fmt.Errorf("rules: product %s without label", p.ID)
	case p.AnnualRate < 0:
		return fmt.Errorf("rules: product %s has negative rate", p.ID)
	case p.TermMonths <= 0:
		return fmt.Errorf("rules: product %s has non-positive term", p.ID)
	case p.MaxLTV <= 0 || p.MaxLTV > 1:
		return fmt.Errorf("rules: product %s has max_ltv outside (0, 1]", p.ID)
	case p.PriceCap < 0 || p.IncomeCap < 0 || p.MaxDTI < 0:
		return fmt.Errorf("rules: product %s has a negative cap", p.ID)
	}
	return nil
}

func coversPriorityOrder(products []model.ProductRule) error {
	byID := make(map[model.ProductID]bool, len(products))
	for _, p := range products {
		byID[p.ID] = true
	}
	for _, id := range model.PriorityOrder {
		if !byID[id] {
			return fmt.Errorf("rules: rulebook missing product %s from priority order", id)
		}
	}
	return nil
}

// Capacity and scoring parameters shared by every product. These mirror the
// conservative underwriting practice of the local market rather than any
// single lender's policy.
const (
	// Baseline DTI ceilings used when a product does not fix its own MaxDTI.
	// Pension-affiliated applicants carry the higher ceiling.
	BaselineDTIAffiliated    = 0.40
	BaselineDTINotAffiliated = 0.35

	// DampeningFloor bounds the product of the capacity dampening factors.
	DampeningFloor = 0.75

	// StressRateDelta is added to the nominal annual rate for the stress
	// scenario.
	StressRateDelta = 0.02
)

// IncomeTypeFactor dampens capacity by income stability.
func IncomeTypeFactor(t model.IncomeType) float64 {
	switch t {
	case model.IncomeSelfEmployed:
		return 0.85
	case model.IncomeMixed:
		return 0.90
	default:
		return 1.00
	}
}

// TenureFactor dampens capacity by seniority in the income source.
func TenureFactor(years float64) float64 {
	switch {
	case years < 1:
		return 0.85
	case years < 3:
		return 0.95
	default:
		return 1.00
	}
}

// AgeFactor dampens capacity outside the prime lending age band.
func AgeFactor(age int) float64 {
	if age < 25 || age > 60 {
		return 0.90
	}
	return 1.00
}

// Lenders is the illustrative lender table ranked by bank affinity.
var Lenders = []model.LenderProfile{
	{Name: "Banco Pichincha", AnnualRate: 0.0975, MaxLTV: 0.80, MaxDTI: 0.40, MinIncome: 800, MinTenureMonths: 12, MinAge: 23, TermOptions: []int{120, 180, 240}},
	{Name: "Banco Guayaquil", AnnualRate: 0.1025, MaxLTV: 0.85, MaxDTI: 0.40, MinIncome: 600, MinTenureMonths: 6, MinAge: 21, TermOptions: []int{120, 180, 240}},
	{Name: "Produbanco", AnnualRate: 0.0999, MaxLTV: 0.80, MaxDTI: 0.35, MinIncome: 1000, MinTenureMonths: 24, MinAge: 25, TermOptions: []int{180, 240}},
	{Name: "Banco del Pacífico", AnnualRate: 0.1075, MaxLTV: 0.85, MaxDTI: 0.40, MinIncome: 500, MinTenureMonths: 6, MinAge: 21, TermOptions: []int{120, 240, 300}},
	{Name: "Mutualista Pichincha", AnnualRate: 0.1150, MaxLTV: 0.90, MaxDTI: 0.45, MinIncome: 400, MinTenureMonths: 3, MinAge: 18, TermOptions: []int{120, 180, 240, 300}},
}

// BenchmarkOffers are the fixed rate/term pairs of the comparison table.
var BenchmarkOffers = []struct {
	Lender     string
	AnnualRate float64
	TermMonths int
}{
	{Lender: "Banco Pichincha", AnnualRate: 0.0975, TermMonths: 240},
	{Lender: "Banco Guayaquil", AnnualRate: 0.1025, TermMonths: 180},
	{Lender: "Mutualista Pichincha", AnnualRate: 0.1150, TermMonths: 300},
}
