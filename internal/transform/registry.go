package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// TransformRegistry creates transforms from string parameters, for CLI use
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (FinancialTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("scale_revenue", createScaleRevenue)
	registry.Register("scale_expenses", createScaleExpenses)
	registry.Register("adjust_amount", createAdjustAmount)
	registry.Register("reclassify_expenses", createReclassifyExpenses)
	registry.Register("set_sector", createSetSector)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (FinancialTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the registered transform names, sorted
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "adjust_amount:field=expenses,amount=-500000"
func (r *TransformRegistry) ParseTransformSpec(spec string) (FinancialTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// ParseTransformSpecs parses each spec in order
func (r *TransformRegistry) ParseTransformSpecs(specs []string) ([]FinancialTransform, error) {
	transforms := make([]FinancialTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

func percentParam(name string, params map[string]string) (decimal.Decimal, error) {
	s, ok := params["percent"]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires 'percent' parameter", name)
	}
	percent, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid percent value: %w", err)
	}
	return percent, nil
}

func createScaleRevenue(params map[string]string) (FinancialTransform, error) {
	percent, err := percentParam("scale_revenue", params)
	if err != nil {
		return nil, err
	}
	return &ScaleRevenue{Percent: percent}, nil
}

func createScaleExpenses(params map[string]string) (FinancialTransform, error) {
	percent, err := percentParam("scale_expenses", params)
	if err != nil {
		return nil, err
	}
	return &ScaleExpenses{Percent: percent}, nil
}

func createReclassifyExpenses(params map[string]string) (FinancialTransform, error) {
	percent, err := percentParam("reclassify_expenses", params)
	if err != nil {
		return nil, err
	}
	return &ReclassifyExpenses{Percent: percent}, nil
}

func createAdjustAmount(params map[string]string) (FinancialTransform, error) {
	fieldName, ok := params["field"]
	if !ok {
		return nil, fmt.Errorf("adjust_amount requires 'field' parameter")
	}

	amountStr, ok := params["amount"]
	if !ok {
		return nil, fmt.Errorf("adjust_amount requires 'amount' parameter")
	}

	amount, err := strconv.ParseInt(amountStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount value: %w", err)
	}

	return &AdjustAmount{Field: fieldName, Amount: amount}, nil
}

func createSetSector(params map[string]string) (FinancialTransform, error) {
	sector, ok := params["sector"]
	if !ok {
		return nil, fmt.Errorf("set_sector requires 'sector' parameter")
	}
	return &SetSector{Sector: domain.Sector(sector)}, nil
}
